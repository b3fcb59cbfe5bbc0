package services

import (
	"errors"
	"math/rand"
	"time"

	"github.com/coupletrack/bliss/internal/db"
	"github.com/coupletrack/bliss/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChallengeService struct {
	challenges *db.ChallengeRepository
	rng        *rand.Rand
}

func NewChallengeService(challenges *db.ChallengeRepository, rng *rand.Rand) *ChallengeService {
	return &ChallengeService{challenges: challenges, rng: rng}
}

// WeeklyChallenge returns the couple's challenge for the current ISO week,
// drawing a fresh one from the pool the first time the week is seen. Once
// assigned, the same challenge stays for the whole week for both partners.
func (service *ChallengeService) WeeklyChallenge(coupleCode string, now time.Time) (models.WeeklyChallenge, error) {
	year, week := now.ISOWeek()

	existing, err := service.challenges.FindWeekly(coupleCode, week, year)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.WeeklyChallenge{}, err
	}

	template := PickWeeklyChallenge(service.rng)
	challenge := models.WeeklyChallenge{
		ID:          uuid.NewString(),
		CoupleCode:  coupleCode,
		WeekNumber:  week,
		Year:        year,
		Title:       template.Title,
		Description: template.Description,
		Difficulty:  template.Difficulty,
	}
	if err := service.challenges.CreateWeekly(&challenge); err != nil {
		// A partner may have created the same week concurrently.
		if assigned, findErr := service.challenges.FindWeekly(coupleCode, week, year); findErr == nil {
			return assigned, nil
		}
		return models.WeeklyChallenge{}, err
	}
	return challenge, nil
}

func (service *ChallengeService) CompleteWeekly(coupleCode string, now time.Time) error {
	year, week := now.ISOWeek()
	return service.challenges.CompleteWeekly(coupleCode, week, year, now)
}
