package db

import (
	"github.com/coupletrack/bliss/internal/models"
	"gorm.io/gorm"
)

type SpecialDateRepository struct {
	database *gorm.DB
}

func NewSpecialDateRepository(database *gorm.DB) *SpecialDateRepository {
	return &SpecialDateRepository{database: database}
}

func (repo *SpecialDateRepository) Create(record *models.SpecialDate) error {
	return repo.database.Create(record).Error
}

func (repo *SpecialDateRepository) ListByCouple(coupleCode string) ([]models.SpecialDate, error) {
	records := make([]models.SpecialDate, 0)
	if err := repo.database.
		Where("couple_code = ?", coupleCode).
		Order("date ASC, time ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *SpecialDateRepository) DeleteByID(coupleCode string, recordID string) error {
	result := repo.database.
		Where("couple_code = ? AND id = ?", coupleCode, recordID).
		Delete(&models.SpecialDate{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
