package services

import (
	"errors"
	"math"
	"time"

	"github.com/coupletrack/bliss/internal/db"
	"github.com/coupletrack/bliss/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// rollingAverageWindow bounds how many observed cycles feed the re-estimated
// cycle length, and minObservedCycles is how many are needed before the
// estimate replaces the configured value.
const (
	rollingAverageWindow = 12
	minObservedCycles    = 3
	historyPageSize      = 24
)

type CycleService struct {
	cycles *db.CycleRepository
	users  *db.UserRepository
}

func NewCycleService(cycles *db.CycleRepository, users *db.UserRepository) *CycleService {
	return &CycleService{cycles: cycles, users: users}
}

type StartPeriodResult struct {
	Message           string `json:"message"`
	ActualCycleLength *int   `json:"actual_cycle_length,omitempty"`
	WasEarly          *bool  `json:"was_early,omitempty"`
	DaysDifference    *int   `json:"days_difference,omitempty"`
	HistoryID         string `json:"history_id"`
}

type CycleHistoryStats struct {
	TotalTracked       int      `json:"total_tracked"`
	AverageCycleLength *float64 `json:"average_cycle_length"`
	ShortestCycle      *int     `json:"shortest_cycle"`
	LongestCycle       *int     `json:"longest_cycle"`
	Regularity         string   `json:"regularity"`
}

type CycleHistoryReport struct {
	History []models.CycleHistory `json:"history"`
	Stats   CycleHistoryStats     `json:"stats"`
}

// SaveCycle replaces the user's cycle configuration.
func (service *CycleService) SaveCycle(userID string, lastPeriodDate string, cycleLength int, periodLength int, now time.Time) (models.CycleData, error) {
	coupleCode := service.coupleCodeOf(userID)

	data := models.CycleData{
		ID:             uuid.NewString(),
		UserID:         userID,
		CoupleCode:     coupleCode,
		LastPeriodDate: lastPeriodDate,
		CycleLength:    normalizedCycleLength(cycleLength),
		PeriodLength:   normalizedPeriodLength(periodLength),
		UpdatedAt:      now,
	}
	if err := service.cycles.ReplaceForUser(&data); err != nil {
		return models.CycleData{}, err
	}
	return data, nil
}

// CycleForUser finds the user's own configuration, or the partner's through
// the shared couple code so a partner sees the same calendar.
func (service *CycleService) CycleForUser(userID string) (models.CycleData, error) {
	data, err := service.cycles.FindByUserID(userID)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.CycleData{}, err
	}

	user, err := service.users.FindByID(userID)
	if err != nil {
		return models.CycleData{}, err
	}
	return service.cycles.FindByCoupleCode(user.CoupleCode)
}

// StartPeriod records an actual period start, measures it against the
// previous one and folds the observation back into the configured cycle
// length once enough cycles are on record.
func (service *CycleService) StartPeriod(userID string, startDate string, notes string, now time.Time) (StartPeriodResult, error) {
	if _, err := parseDay(startDate); err != nil {
		return StartPeriodResult{}, err
	}
	coupleCode := service.coupleCodeOf(userID)

	current, currentErr := service.CycleForUser(userID)
	hasCurrent := currentErr == nil
	if currentErr != nil && !errors.Is(currentErr, gorm.ErrRecordNotFound) {
		return StartPeriodResult{}, currentErr
	}

	record := models.CycleHistory{
		ID:              uuid.NewString(),
		UserID:          userID,
		CoupleCode:      coupleCode,
		PeriodStartDate: startDate,
		Notes:           notes,
		CreatedAt:       now,
	}

	last, lastErr := service.cycles.FindLatestHistory(userID)
	if lastErr != nil && !errors.Is(lastErr, gorm.ErrRecordNotFound) {
		return StartPeriodResult{}, lastErr
	}
	if lastErr == nil {
		previousStart, err := parseDay(last.PeriodStartDate)
		newStart, err2 := parseDay(startDate)
		if err == nil && err2 == nil {
			actual := daysBetween(previousStart, newStart)
			expected := models.DefaultCycleLength
			if hasCurrent {
				expected = current.CycleLength
			}
			difference := actual - expected
			early := difference < 0
			record.CycleLength = &actual
			record.WasEarly = &early
			record.DaysDifference = &difference
		}
	}

	if err := service.cycles.CreateHistory(&record); err != nil {
		return StartPeriodResult{}, err
	}

	if hasCurrent {
		length, err := service.reestimatedCycleLength(userID, current.CycleLength)
		if err != nil {
			return StartPeriodResult{}, err
		}
		if err := service.cycles.UpdateForUser(userID, map[string]any{
			"last_period_date": startDate,
			"cycle_length":     length,
			"updated_at":       now,
		}); err != nil {
			return StartPeriodResult{}, err
		}
	} else {
		fresh := models.CycleData{
			ID:             uuid.NewString(),
			UserID:         userID,
			CoupleCode:     coupleCode,
			LastPeriodDate: startDate,
			CycleLength:    models.DefaultCycleLength,
			PeriodLength:   models.DefaultPeriodLength,
			UpdatedAt:      now,
		}
		if err := service.cycles.ReplaceForUser(&fresh); err != nil {
			return StartPeriodResult{}, err
		}
	}

	result := StartPeriodResult{
		Message:           "Nuovo ciclo registrato!",
		ActualCycleLength: record.CycleLength,
		WasEarly:          record.WasEarly,
		HistoryID:         record.ID,
	}
	if record.DaysDifference != nil {
		absolute := *record.DaysDifference
		if absolute < 0 {
			absolute = -absolute
		}
		result.DaysDifference = &absolute
	}
	return result, nil
}

func (service *CycleService) reestimatedCycleLength(userID string, fallback int) (int, error) {
	measured, err := service.cycles.ListMeasuredHistory(userID, rollingAverageWindow)
	if err != nil {
		return 0, err
	}
	if len(measured) < minObservedCycles {
		return fallback, nil
	}
	sum := 0
	for _, record := range measured {
		sum += *record.CycleLength
	}
	return int(math.Round(float64(sum) / float64(len(measured)))), nil
}

// HistoryReport lists tracked periods newest first with summary statistics.
// A user with no rows of their own sees the partner's history.
func (service *CycleService) HistoryReport(userID string) (CycleHistoryReport, error) {
	history, err := service.cycles.ListHistoryByUser(userID, historyPageSize)
	if err != nil {
		return CycleHistoryReport{}, err
	}
	if len(history) == 0 {
		if user, userErr := service.users.FindByID(userID); userErr == nil {
			history, err = service.cycles.ListHistoryByCouple(user.CoupleCode, historyPageSize)
			if err != nil {
				return CycleHistoryReport{}, err
			}
		}
	}

	return CycleHistoryReport{
		History: history,
		Stats:   buildCycleHistoryStats(history),
	}, nil
}

func (service *CycleService) EndPeriod(userID string, historyID string, endDate string) error {
	if _, err := parseDay(endDate); err != nil {
		return err
	}
	return service.cycles.EndPeriod(userID, historyID, endDate)
}

func buildCycleHistoryStats(history []models.CycleHistory) CycleHistoryStats {
	stats := CycleHistoryStats{
		TotalTracked: len(history),
		Regularity:   "unknown",
	}

	lengths := make([]int, 0, len(history))
	for _, record := range history {
		if record.CycleLength != nil {
			lengths = append(lengths, *record.CycleLength)
		}
	}
	if len(lengths) == 0 {
		return stats
	}

	sum := 0
	shortest := lengths[0]
	longest := lengths[0]
	for _, length := range lengths {
		sum += length
		if length < shortest {
			shortest = length
		}
		if length > longest {
			longest = length
		}
	}
	average := round1(float64(sum) / float64(len(lengths)))
	stats.AverageCycleLength = &average
	stats.ShortestCycle = &shortest
	stats.LongestCycle = &longest

	if len(lengths) >= minObservedCycles {
		stats.Regularity = regularityBand(lengths)
	}
	return stats
}

func regularityBand(lengths []int) string {
	mean := 0.0
	for _, length := range lengths {
		mean += float64(length)
	}
	mean /= float64(len(lengths))

	variance := 0.0
	for _, length := range lengths {
		delta := float64(length) - mean
		variance += delta * delta
	}
	deviation := math.Sqrt(variance / float64(len(lengths)))

	switch {
	case deviation <= 2:
		return "molto regolare"
	case deviation <= 4:
		return "regolare"
	case deviation <= 7:
		return "variabile"
	default:
		return "irregolare"
	}
}

func (service *CycleService) coupleCodeOf(userID string) string {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return ""
	}
	return user.CoupleCode
}
