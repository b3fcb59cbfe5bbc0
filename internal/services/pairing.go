package services

import (
	"errors"
	"time"

	"github.com/coupletrack/bliss/internal/db"
	"github.com/coupletrack/bliss/internal/models"
	"github.com/coupletrack/bliss/internal/security"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCoupleCodeNotFound = errors.New("couple code not found")
	ErrSelfPairing        = errors.New("cannot pair with yourself")
	ErrCoupleOccupied     = errors.New("couple already has two members")
)

// couple codes are retried on collision; with 36^6 values this is
// effectively a formality.
const coupleCodeAttempts = 5

type PairingService struct {
	users *db.UserRepository
}

func NewPairingService(users *db.UserRepository) *PairingService {
	return &PairingService{users: users}
}

// Register creates a user with a fresh unique couple code.
func (service *PairingService) Register(name string, gender string, now time.Time) (models.User, error) {
	code, err := service.uniqueCoupleCode()
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:         uuid.NewString(),
		Name:       name,
		Gender:     gender,
		CoupleCode: code,
		CreatedAt:  now,
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Join links the user to the owner of coupleCode. After a successful join
// both users share the owner's code. A code whose couple is already full
// cannot be joined again.
func (service *PairingService) Join(userID string, coupleCode string) (models.User, error) {
	owner, err := service.users.FindByCoupleCode(coupleCode)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrCoupleCodeNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	if owner.ID == userID {
		return models.User{}, ErrSelfPairing
	}
	if owner.HasPartner() {
		return models.User{}, ErrCoupleOccupied
	}

	joining, err := service.users.FindByID(userID)
	if err != nil {
		return models.User{}, err
	}
	if joining.HasPartner() {
		return models.User{}, ErrCoupleOccupied
	}

	if err := service.users.LinkCouple(joining.ID, owner.ID, owner.CoupleCode); err != nil {
		return models.User{}, err
	}
	return service.users.FindByID(owner.ID)
}

func (service *PairingService) uniqueCoupleCode() (string, error) {
	for attempt := 0; attempt < coupleCodeAttempts; attempt++ {
		code, err := security.RandomString(models.CoupleCodeLength, models.CoupleCodeAlphabet)
		if err != nil {
			return "", err
		}
		taken, err := service.users.ExistsByCoupleCode(code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", errors.New("could not generate a free couple code")
}
