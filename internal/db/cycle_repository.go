package db

import (
	"github.com/coupletrack/bliss/internal/models"
	"gorm.io/gorm"
)

type CycleRepository struct {
	database *gorm.DB
}

func NewCycleRepository(database *gorm.DB) *CycleRepository {
	return &CycleRepository{database: database}
}

// ReplaceForUser swaps out the user's cycle configuration for the given one.
// There is at most one row per user at any time.
func (repo *CycleRepository) ReplaceForUser(data *models.CycleData) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", data.UserID).Delete(&models.CycleData{}).Error; err != nil {
			return err
		}
		return tx.Create(data).Error
	})
}

func (repo *CycleRepository) FindByUserID(userID string) (models.CycleData, error) {
	var data models.CycleData
	if err := repo.database.Where("user_id = ?", userID).First(&data).Error; err != nil {
		return models.CycleData{}, err
	}
	return data, nil
}

// FindByCoupleCode looks the configuration up through the shared couple
// code, used when a partner without their own row asks for the couple's
// cycle.
func (repo *CycleRepository) FindByCoupleCode(coupleCode string) (models.CycleData, error) {
	var data models.CycleData
	if err := repo.database.
		Where("couple_code = ?", coupleCode).
		First(&data).Error; err != nil {
		return models.CycleData{}, err
	}
	return data, nil
}

func (repo *CycleRepository) UpdateForUser(userID string, updates map[string]any) error {
	return repo.database.Model(&models.CycleData{}).
		Where("user_id = ?", userID).
		Updates(updates).Error
}

func (repo *CycleRepository) CreateHistory(record *models.CycleHistory) error {
	return repo.database.Create(record).Error
}

// ListHistoryByUser returns period records newest first.
func (repo *CycleRepository) ListHistoryByUser(userID string, limit int) ([]models.CycleHistory, error) {
	records := make([]models.CycleHistory, 0)
	query := repo.database.
		Where("user_id = ?", userID).
		Order("period_start_date DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *CycleRepository) FindLatestHistory(userID string) (models.CycleHistory, error) {
	var record models.CycleHistory
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("period_start_date DESC").
		First(&record).Error; err != nil {
		return models.CycleHistory{}, err
	}
	return record, nil
}

func (repo *CycleRepository) ListHistoryByCouple(coupleCode string, limit int) ([]models.CycleHistory, error) {
	records := make([]models.CycleHistory, 0)
	query := repo.database.
		Where("couple_code = ?", coupleCode).
		Order("period_start_date DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// ListMeasuredHistory returns the newest records that carry an observed
// cycle length, used for the rolling average.
func (repo *CycleRepository) ListMeasuredHistory(userID string, limit int) ([]models.CycleHistory, error) {
	records := make([]models.CycleHistory, 0)
	query := repo.database.
		Where("user_id = ? AND cycle_length IS NOT NULL", userID).
		Order("period_start_date DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *CycleRepository) EndPeriod(userID string, recordID string, endDate string) error {
	result := repo.database.Model(&models.CycleHistory{}).
		Where("user_id = ? AND id = ?", userID, recordID).
		Update("period_end_date", endDate)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
