package db

import (
	"github.com/coupletrack/bliss/internal/models"
	"gorm.io/gorm"
)

type WishlistRepository struct {
	database *gorm.DB
}

func NewWishlistRepository(database *gorm.DB) *WishlistRepository {
	return &WishlistRepository{database: database}
}

func (repo *WishlistRepository) Create(item *models.WishlistItem) error {
	return repo.database.Create(item).Error
}

func (repo *WishlistRepository) DeleteByID(itemRowID string) error {
	return repo.database.Where("id = ?", itemRowID).Delete(&models.WishlistItem{}).Error
}

func (repo *WishlistRepository) FindByUserAndItem(coupleCode string, userID string, itemID string) (models.WishlistItem, error) {
	var item models.WishlistItem
	if err := repo.database.
		Where("couple_code = ? AND user_id = ? AND item_id = ?", coupleCode, userID, itemID).
		First(&item).Error; err != nil {
		return models.WishlistItem{}, err
	}
	return item, nil
}

func (repo *WishlistRepository) ListByUser(coupleCode string, userID string) ([]models.WishlistItem, error) {
	items := make([]models.WishlistItem, 0)
	if err := repo.database.
		Where("couple_code = ? AND user_id = ?", coupleCode, userID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListUnlocked returns every row the couple has matched on, both partners'
// copies included.
func (repo *WishlistRepository) ListUnlocked(coupleCode string) ([]models.WishlistItem, error) {
	items := make([]models.WishlistItem, 0)
	if err := repo.database.
		Where("couple_code = ? AND both_want = ?", coupleCode, true).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// CountSecretWishes counts a user's picks the partner has not matched yet.
func (repo *WishlistRepository) CountSecretWishes(coupleCode string, userID string) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.WishlistItem{}).
		Where("couple_code = ? AND user_id = ? AND both_want = ?", coupleCode, userID, false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SetBothWantForItem flips the match flag on every copy of the item within
// the couple.
func (repo *WishlistRepository) SetBothWantForItem(coupleCode string, itemID string, bothWant bool) error {
	return repo.database.Model(&models.WishlistItem{}).
		Where("couple_code = ? AND item_id = ?", coupleCode, itemID).
		Update("both_want", bothWant).Error
}
