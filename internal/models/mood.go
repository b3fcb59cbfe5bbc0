package models

import "time"

// MoodEntry is keyed by (user, day): re-logging a day replaces the old row.
type MoodEntry struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	UserID     string    `gorm:"not null;uniqueIndex:uidx_mood_user_date" json:"user_id"`
	CoupleCode string    `gorm:"index;not null" json:"couple_code"`
	Date       string    `gorm:"not null;uniqueIndex:uidx_mood_user_date" json:"date"`
	Mood       int       `gorm:"not null" json:"mood"`
	Energy     int       `gorm:"not null" json:"energy"`
	Stress     int       `gorm:"not null" json:"stress"`
	Libido     int       `gorm:"not null" json:"libido"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}
