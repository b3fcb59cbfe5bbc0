package services

import (
	"strings"
	"time"

	"github.com/coupletrack/bliss/internal/models"
)

// MET (Metabolic Equivalent of Task) per position. Unknown positions fall
// back to defaultMET.
var positionMET = map[string]float64{
	"missionary":      2.8,
	"cowgirl":         4.0,
	"reverse_cowgirl": 4.2,
	"doggy":           3.5,
	"standing":        4.5,
	"spooning":        2.0,
	"69":              3.0,
	"lotus":           3.2,
	"prone":           2.5,
	"edge_of_bed":     3.8,
	"shower":          4.0,
	"wall":            4.5,
	"chair":           3.5,
}

const (
	defaultMET              = 3.0
	defaultBodyWeightKg     = 70.0
	defaultDurationMinutes  = 15
	caloriesPerChocolateBar = 100.0
	caloriesPerPizzaSlice   = 285.0
	caloriesPerStep         = 0.04
	caloriesPerKmRunning    = 60.0
)

type CalorieEquivalents struct {
	ChocolateBars float64 `json:"chocolate_bars"`
	PizzaSlices   float64 `json:"pizza_slices"`
	Steps         int     `json:"steps,omitempty"`
	KmRunning     float64 `json:"km_running,omitempty"`
}

type CalorieEstimate struct {
	Calories    int                `json:"calories"`
	METValue    float64            `json:"met_value"`
	Equivalents CalorieEquivalents `json:"equivalents"`
	Duration    int                `json:"duration"`
	Positions   int                `json:"positions_count"`
	Intensity   int                `json:"intensity"`
	BaseMET     float64            `json:"base_met"`
}

type SessionCalories struct {
	Date     string `json:"date"`
	Calories int    `json:"calories"`
	Duration int    `json:"duration"`
}

type MonthlyCalories struct {
	Month             int                `json:"month"`
	Year              int                `json:"year"`
	TotalCalories     int                `json:"total_calories"`
	TotalDuration     int                `json:"total_duration_minutes"`
	SessionCount      int                `json:"session_count"`
	AveragePerSession int                `json:"average_per_session"`
	Equivalents       CalorieEquivalents `json:"equivalents"`
	Sessions          []SessionCalories  `json:"sessions"`
}

// EstimateCalories applies the MET formula: MET x body weight (kg) x hours.
// Quality modulates intensity from -20% at 1 to +30% at 5.
func EstimateCalories(durationMinutes int, positions []string, quality int, weightKg float64) CalorieEstimate {
	if durationMinutes <= 0 {
		durationMinutes = defaultDurationMinutes
	}
	if quality <= 0 {
		quality = 3
	}
	if weightKg <= 0 {
		weightKg = defaultBodyWeightKg
	}

	baseMET := averageMET(positions)
	adjustedMET := baseMET * (0.8 + float64(quality)*0.1)
	calories := adjustedMET * weightKg * float64(durationMinutes) / 60

	return CalorieEstimate{
		Calories: int(calories + 0.5),
		METValue: round1(adjustedMET),
		Equivalents: CalorieEquivalents{
			ChocolateBars: round1(calories / caloriesPerChocolateBar),
			PizzaSlices:   round1(calories / caloriesPerPizzaSlice),
			Steps:         int(calories/caloriesPerStep + 0.5),
		},
		Duration:  durationMinutes,
		Positions: len(positions),
		Intensity: quality,
		BaseMET:   round1(baseMET),
	}
}

// BuildMonthlyCalories sums per-session estimates over one calendar month of
// entries, assuming the default body weight.
func BuildMonthlyCalories(entries []models.IntimacyEntry, month time.Month, year int) MonthlyCalories {
	monthly := MonthlyCalories{
		Month:    int(month),
		Year:     year,
		Sessions: []SessionCalories{},
	}

	totalCalories := 0.0
	for _, entry := range entries {
		day, err := entry.Day()
		if err != nil || day.Month() != month || day.Year() != year {
			continue
		}
		estimate := EstimateCalories(entry.DurationMinutes, entry.PositionsUsed, entry.QualityRating, defaultBodyWeightKg)
		totalCalories += float64(estimate.Calories)
		monthly.TotalDuration += estimate.Duration
		monthly.SessionCount++
		monthly.Sessions = append(monthly.Sessions, SessionCalories{
			Date:     entry.Date,
			Calories: estimate.Calories,
			Duration: estimate.Duration,
		})
	}

	monthly.TotalCalories = int(totalCalories + 0.5)
	if monthly.SessionCount > 0 {
		monthly.AveragePerSession = monthly.TotalCalories / monthly.SessionCount
	}
	monthly.Equivalents = CalorieEquivalents{
		ChocolateBars: round1(totalCalories / caloriesPerChocolateBar),
		PizzaSlices:   round1(totalCalories / caloriesPerPizzaSlice),
		KmRunning:     round1(totalCalories / caloriesPerKmRunning),
	}
	return monthly
}

func averageMET(positions []string) float64 {
	if len(positions) == 0 {
		return defaultMET
	}
	total := 0.0
	for _, position := range positions {
		key := strings.ReplaceAll(strings.ToLower(position), " ", "_")
		met, known := positionMET[key]
		if !known {
			met = defaultMET
		}
		total += met
	}
	return total / float64(len(positions))
}
