package models

import "time"

const (
	NoteCategorySweet    = "sweet"
	NoteCategorySpicy    = "spicy"
	NoteCategoryFunny    = "funny"
	NoteCategoryRomantic = "romantic"
)

type LoveNote struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	CoupleCode string    `gorm:"index;not null" json:"couple_code"`
	SenderID   string    `gorm:"not null" json:"sender_id"`
	SenderName string    `json:"sender_name"`
	Message    string    `gorm:"not null" json:"message"`
	Category   string    `json:"category"`
	IsRead     bool      `gorm:"not null;default:false" json:"is_read"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}
