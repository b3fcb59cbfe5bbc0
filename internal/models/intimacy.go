package models

import "time"

// DayFormat is the calendar-day layout used for every date column. Days are
// stored as plain YYYY-MM-DD text so that range scans stay lexicographic.
const DayFormat = "2006-01-02"

type IntimacyEntry struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	CoupleCode      string    `gorm:"index;not null" json:"couple_code"`
	Date            string    `gorm:"not null" json:"date"`
	QualityRating   int       `gorm:"not null" json:"quality_rating"`
	PositionsUsed   []string  `gorm:"serializer:json" json:"positions_used"`
	DurationMinutes int       `json:"duration_minutes,omitempty"`
	Location        string    `json:"location,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedBy       string    `gorm:"not null" json:"created_by"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
}

func (entry *IntimacyEntry) Day() (time.Time, error) {
	return time.Parse(DayFormat, entry.Date)
}
