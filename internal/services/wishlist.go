package services

import (
	"errors"
	"time"

	"github.com/coupletrack/bliss/internal/db"
	"github.com/coupletrack/bliss/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WishlistService struct {
	wishlist *db.WishlistRepository
	users    *db.UserRepository
}

func NewWishlistService(wishlist *db.WishlistRepository, users *db.UserRepository) *WishlistService {
	return &WishlistService{wishlist: wishlist, users: users}
}

type WishlistToggleResult struct {
	Action   string `json:"action"`
	Unlocked bool   `json:"unlocked"`
}

type WishlistEntry struct {
	ID       string `json:"id"`
	ItemID   string `json:"item_id"`
	Title    string `json:"title"`
	BothWant bool   `json:"both_want"`
}

type WishlistView struct {
	MyWishes                []WishlistEntry `json:"my_wishes"`
	UnlockedWishes          []WishlistEntry `json:"unlocked_wishes"`
	PartnerSecretWishesHeld int             `json:"partner_secret_wishes_count"`
}

// Toggle adds the item to the user's list or removes it if already there.
// An item becomes unlocked the moment both partners hold it; removing your
// copy re-hides the partner's.
func (service *WishlistService) Toggle(coupleCode string, userID string, itemID string, title string, now time.Time) (WishlistToggleResult, error) {
	existing, err := service.wishlist.FindByUserAndItem(coupleCode, userID, itemID)
	if err == nil {
		if err := service.wishlist.DeleteByID(existing.ID); err != nil {
			return WishlistToggleResult{}, err
		}
		if err := service.wishlist.SetBothWantForItem(coupleCode, itemID, false); err != nil {
			return WishlistToggleResult{}, err
		}
		return WishlistToggleResult{Action: "removed"}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return WishlistToggleResult{}, err
	}

	unlocked := false
	if partner, partnerErr := service.partnerOf(userID); partnerErr == nil {
		if _, matchErr := service.wishlist.FindByUserAndItem(coupleCode, partner.ID, itemID); matchErr == nil {
			unlocked = true
		}
	}

	if title == "" {
		title = itemID
	}
	item := models.WishlistItem{
		ID:         uuid.NewString(),
		CoupleCode: coupleCode,
		UserID:     userID,
		ItemID:     itemID,
		Title:      title,
		BothWant:   unlocked,
		CreatedAt:  now,
	}
	if err := service.wishlist.Create(&item); err != nil {
		return WishlistToggleResult{}, err
	}
	if unlocked {
		if err := service.wishlist.SetBothWantForItem(coupleCode, itemID, true); err != nil {
			return WishlistToggleResult{}, err
		}
	}
	return WishlistToggleResult{Action: "added", Unlocked: unlocked}, nil
}

// View shows the user's own picks, the couple's unlocked matches and how
// many secret picks the partner still holds, without revealing which.
func (service *WishlistService) View(coupleCode string, userID string) (WishlistView, error) {
	view := WishlistView{
		MyWishes:       []WishlistEntry{},
		UnlockedWishes: []WishlistEntry{},
	}

	mine, err := service.wishlist.ListByUser(coupleCode, userID)
	if err != nil {
		return WishlistView{}, err
	}
	for _, item := range mine {
		view.MyWishes = append(view.MyWishes, WishlistEntry{
			ID:       item.ID,
			ItemID:   item.ItemID,
			Title:    item.Title,
			BothWant: item.BothWant,
		})
	}

	partner, partnerErr := service.partnerOf(userID)
	if partnerErr != nil {
		return view, nil
	}

	secretCount, err := service.wishlist.CountSecretWishes(coupleCode, partner.ID)
	if err != nil {
		return WishlistView{}, err
	}
	view.PartnerSecretWishesHeld = int(secretCount)

	unlocked, err := service.wishlist.ListUnlocked(coupleCode)
	if err != nil {
		return WishlistView{}, err
	}
	seen := make(map[string]bool, len(unlocked))
	for _, item := range unlocked {
		if seen[item.ItemID] {
			continue
		}
		seen[item.ItemID] = true
		view.UnlockedWishes = append(view.UnlockedWishes, WishlistEntry{
			ID:       item.ID,
			ItemID:   item.ItemID,
			Title:    item.Title,
			BothWant: true,
		})
	}
	return view, nil
}

func (service *WishlistService) partnerOf(userID string) (models.User, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return models.User{}, err
	}
	if !user.HasPartner() {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return service.users.FindPartner(user)
}
