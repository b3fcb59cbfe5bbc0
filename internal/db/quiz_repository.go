package db

import (
	"errors"

	"github.com/coupletrack/bliss/internal/models"
	"gorm.io/gorm"
)

type QuizRepository struct {
	database *gorm.DB
}

func NewQuizRepository(database *gorm.DB) *QuizRepository {
	return &QuizRepository{database: database}
}

// SaveAnswer records one answer, replacing the user's previous answer to
// the same question if there is one.
func (repo *QuizRepository) SaveAnswer(answer *models.QuizAnswer) error {
	var existing models.QuizAnswer
	err := repo.database.
		Where("couple_code = ? AND user_id = ? AND question_id = ?",
			answer.CoupleCode, answer.UserID, answer.QuestionID).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repo.database.Create(answer).Error
	}
	if err != nil {
		return err
	}

	answer.ID = existing.ID
	answer.CreatedAt = existing.CreatedAt
	return repo.database.Save(answer).Error
}

func (repo *QuizRepository) ListByCouple(coupleCode string) ([]models.QuizAnswer, error) {
	answers := make([]models.QuizAnswer, 0)
	if err := repo.database.
		Where("couple_code = ?", coupleCode).
		Order("question_id ASC").
		Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}
