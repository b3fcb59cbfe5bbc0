package models

import "time"

type Challenge struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	CoupleCode  string    `gorm:"index;not null" json:"couple_code"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Completed   bool      `gorm:"not null;default:false" json:"completed"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}

// WeeklyChallenge is assigned once per (couple, ISO week) on first fetch.
type WeeklyChallenge struct {
	ID          string     `gorm:"primaryKey" json:"id"`
	CoupleCode  string     `gorm:"not null;uniqueIndex:uidx_weekly_couple_week" json:"couple_code"`
	WeekNumber  int        `gorm:"not null;uniqueIndex:uidx_weekly_couple_week" json:"week_number"`
	Year        int        `gorm:"not null;uniqueIndex:uidx_weekly_couple_week" json:"year"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	Difficulty  string     `json:"difficulty"`
	Completed   bool       `gorm:"not null;default:false" json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
