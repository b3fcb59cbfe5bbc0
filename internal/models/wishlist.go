package models

import "time"

// WishlistItem is one partner's pick of a catalog item. BothWant flips to
// true on both rows exactly when both partners hold the same ItemID.
type WishlistItem struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	CoupleCode string    `gorm:"index:idx_wishlist_couple_user;not null" json:"couple_code"`
	UserID     string    `gorm:"index:idx_wishlist_couple_user;not null" json:"user_id"`
	ItemID     string    `gorm:"not null" json:"item_id"`
	Title      string    `json:"title"`
	Category   string    `json:"category,omitempty"`
	BothWant   bool      `gorm:"not null;default:false" json:"both_want"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}

// SecretDesire holds a user's full selection set; saving replaces it whole.
type SecretDesire struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	CoupleCode string    `gorm:"not null;uniqueIndex:uidx_desires_couple_user" json:"couple_code"`
	UserID     string    `gorm:"not null;uniqueIndex:uidx_desires_couple_user" json:"user_id"`
	Desires    []string  `gorm:"serializer:json" json:"desires"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}
