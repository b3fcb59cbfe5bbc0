package db

import (
	"errors"

	"github.com/coupletrack/bliss/internal/models"
	"gorm.io/gorm"
)

type MoodRepository struct {
	database *gorm.DB
}

func NewMoodRepository(database *gorm.DB) *MoodRepository {
	return &MoodRepository{database: database}
}

// Upsert writes the user's entry for entry.Date, replacing any previous one
// for the same day. The caller keeps the returned ID of the surviving row.
func (repo *MoodRepository) Upsert(entry *models.MoodEntry) error {
	var existing models.MoodEntry
	err := repo.database.
		Where("user_id = ? AND date = ?", entry.UserID, entry.Date).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repo.database.Create(entry).Error
	}
	if err != nil {
		return err
	}

	entry.ID = existing.ID
	entry.CreatedAt = existing.CreatedAt
	return repo.database.Save(entry).Error
}

func (repo *MoodRepository) ListByCouple(coupleCode string) ([]models.MoodEntry, error) {
	entries := make([]models.MoodEntry, 0)
	if err := repo.database.
		Where("couple_code = ?", coupleCode).
		Order("date ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
