package db

import (
	"errors"

	"github.com/coupletrack/bliss/internal/models"
	"gorm.io/gorm"
)

type DesireRepository struct {
	database *gorm.DB
}

func NewDesireRepository(database *gorm.DB) *DesireRepository {
	return &DesireRepository{database: database}
}

// Save stores the user's full selection, replacing whatever was there.
func (repo *DesireRepository) Save(record *models.SecretDesire) error {
	var existing models.SecretDesire
	err := repo.database.
		Where("couple_code = ? AND user_id = ?", record.CoupleCode, record.UserID).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repo.database.Create(record).Error
	}
	if err != nil {
		return err
	}

	record.ID = existing.ID
	record.CreatedAt = existing.CreatedAt
	return repo.database.Save(record).Error
}

func (repo *DesireRepository) FindByUser(coupleCode string, userID string) (models.SecretDesire, error) {
	var record models.SecretDesire
	if err := repo.database.
		Where("couple_code = ? AND user_id = ?", coupleCode, userID).
		First(&record).Error; err != nil {
		return models.SecretDesire{}, err
	}
	return record, nil
}

func (repo *DesireRepository) ListByCouple(coupleCode string) ([]models.SecretDesire, error) {
	records := make([]models.SecretDesire, 0, 2)
	if err := repo.database.
		Where("couple_code = ?", coupleCode).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
