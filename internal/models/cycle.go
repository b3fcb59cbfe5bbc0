package models

import "time"

const (
	DefaultCycleLength  = 28
	DefaultPeriodLength = 5

	// LutealPhaseDays separates ovulation from the next period start.
	LutealPhaseDays = 14
)

// CycleData is the single current cycle configuration per user; saving a new
// one replaces the previous row.
type CycleData struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	UserID         string    `gorm:"uniqueIndex;not null" json:"user_id"`
	CoupleCode     string    `gorm:"index" json:"couple_code,omitempty"`
	LastPeriodDate string    `gorm:"not null" json:"last_period_date"`
	CycleLength    int       `gorm:"not null;default:28" json:"cycle_length"`
	PeriodLength   int       `gorm:"not null;default:5" json:"period_length"`
	UpdatedAt      time.Time `gorm:"not null" json:"updated_at"`
}

// CycleHistory records when periods actually started, so predictions can be
// compared against reality and the cycle length re-estimated.
type CycleHistory struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	UserID          string    `gorm:"index;not null" json:"user_id"`
	CoupleCode      string    `gorm:"index" json:"couple_code,omitempty"`
	PeriodStartDate string    `gorm:"not null" json:"period_start_date"`
	PeriodEndDate   string    `json:"period_end_date,omitempty"`
	CycleLength     *int      `json:"cycle_length,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	WasEarly        *bool     `json:"was_early,omitempty"`
	DaysDifference  *int      `json:"days_difference,omitempty"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
}
