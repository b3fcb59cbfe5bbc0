package db

import (
	"github.com/coupletrack/bliss/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

func (repo *UserRepository) FindByID(userID string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("id = ?", userID).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindByCoupleCode(coupleCode string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("couple_code = ?", coupleCode).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) ExistsByCoupleCode(coupleCode string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("couple_code = ?", coupleCode).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) FindPartner(user models.User) (models.User, error) {
	var partner models.User
	if err := repo.database.Where("id = ?", user.PartnerID).First(&partner).Error; err != nil {
		return models.User{}, err
	}
	return partner, nil
}

// MembersOfCouple returns the one or two users sharing coupleCode. Pairing
// collapses both partners onto a single code, so this is never more than two.
func (repo *UserRepository) MembersOfCouple(coupleCode string) ([]models.User, error) {
	users := make([]models.User, 0, 2)
	if err := repo.database.Where("couple_code = ?", coupleCode).
		Order("created_at ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// LinkCouple joins two users under the joined user's code. Both rows are
// updated in one transaction so a crash cannot leave a half-paired couple.
func (repo *UserRepository) LinkCouple(joiningID string, ownerID string, sharedCode string) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).Where("id = ?", joiningID).Updates(map[string]any{
			"partner_id":  ownerID,
			"couple_code": sharedCode,
		}).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("id = ?", ownerID).Updates(map[string]any{
			"partner_id": joiningID,
		}).Error
	})
}

func (repo *UserRepository) UpdatePushToken(userID string, pushToken string) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Update("push_token", pushToken).Error
}
