package models

import "time"

type SpecialDate struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	CoupleCode string    `gorm:"index;not null" json:"couple_code"`
	Title      string    `gorm:"not null" json:"title"`
	Date       string    `gorm:"not null" json:"date"`
	Time       string    `json:"time,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	CreatedBy  string    `json:"created_by"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}
