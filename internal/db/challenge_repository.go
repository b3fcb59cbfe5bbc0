package db

import (
	"time"

	"github.com/coupletrack/bliss/internal/models"
	"gorm.io/gorm"
)

type ChallengeRepository struct {
	database *gorm.DB
}

func NewChallengeRepository(database *gorm.DB) *ChallengeRepository {
	return &ChallengeRepository{database: database}
}

func (repo *ChallengeRepository) Create(challenge *models.Challenge) error {
	return repo.database.Create(challenge).Error
}

func (repo *ChallengeRepository) ListByCouple(coupleCode string) ([]models.Challenge, error) {
	challenges := make([]models.Challenge, 0)
	if err := repo.database.
		Where("couple_code = ?", coupleCode).
		Order("created_at DESC").
		Find(&challenges).Error; err != nil {
		return nil, err
	}
	return challenges, nil
}

func (repo *ChallengeRepository) MarkCompleted(coupleCode string, challengeID string) error {
	result := repo.database.Model(&models.Challenge{}).
		Where("couple_code = ? AND id = ?", coupleCode, challengeID).
		Update("completed", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (repo *ChallengeRepository) FindWeekly(coupleCode string, weekNumber int, year int) (models.WeeklyChallenge, error) {
	var challenge models.WeeklyChallenge
	if err := repo.database.
		Where("couple_code = ? AND week_number = ? AND year = ?", coupleCode, weekNumber, year).
		First(&challenge).Error; err != nil {
		return models.WeeklyChallenge{}, err
	}
	return challenge, nil
}

func (repo *ChallengeRepository) CreateWeekly(challenge *models.WeeklyChallenge) error {
	return repo.database.Create(challenge).Error
}

func (repo *ChallengeRepository) CompleteWeekly(coupleCode string, weekNumber int, year int, completedAt time.Time) error {
	result := repo.database.Model(&models.WeeklyChallenge{}).
		Where("couple_code = ? AND week_number = ? AND year = ?", coupleCode, weekNumber, year).
		Updates(map[string]any{
			"completed":    true,
			"completed_at": completedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

