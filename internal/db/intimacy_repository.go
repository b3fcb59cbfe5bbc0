package db

import (
	"github.com/coupletrack/bliss/internal/models"
	"gorm.io/gorm"
)

type IntimacyRepository struct {
	database *gorm.DB
}

func NewIntimacyRepository(database *gorm.DB) *IntimacyRepository {
	return &IntimacyRepository{database: database}
}

func (repo *IntimacyRepository) Create(entry *models.IntimacyEntry) error {
	return repo.database.Create(entry).Error
}

// ListByCouple returns every entry for the couple, newest day first. Entries
// sharing a day come back in reverse insertion order.
func (repo *IntimacyRepository) ListByCouple(coupleCode string) ([]models.IntimacyEntry, error) {
	entries := make([]models.IntimacyEntry, 0)
	if err := repo.database.
		Where("couple_code = ?", coupleCode).
		Order("date DESC, created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ListByCoupleInRange returns entries with fromDay <= date <= toDay, oldest
// first. Days are YYYY-MM-DD text so the comparison is plain lexicographic.
func (repo *IntimacyRepository) ListByCoupleInRange(coupleCode string, fromDay string, toDay string) ([]models.IntimacyEntry, error) {
	entries := make([]models.IntimacyEntry, 0)
	if err := repo.database.
		Where("couple_code = ? AND date >= ? AND date <= ?", coupleCode, fromDay, toDay).
		Order("date ASC, created_at ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *IntimacyRepository) CountByCouple(coupleCode string) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.IntimacyEntry{}).
		Where("couple_code = ?", coupleCode).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteByID removes one entry, scoped to the couple so nobody can delete
// across couples by guessing IDs. Returns gorm.ErrRecordNotFound when
// nothing matched.
func (repo *IntimacyRepository) DeleteByID(coupleCode string, entryID string) error {
	result := repo.database.
		Where("couple_code = ? AND id = ?", coupleCode, entryID).
		Delete(&models.IntimacyEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
