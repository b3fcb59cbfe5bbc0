package services

import (
	"testing"
	"time"

	"github.com/coupletrack/bliss/internal/models"
)

func TestBuildFertilityCalendarProjectsCycles(t *testing.T) {
	cycle := models.CycleData{
		LastPeriodDate: "2025-03-01",
		CycleLength:    28,
		PeriodLength:   5,
	}

	calendar := BuildFertilityCalendar(cycle, 2, false)

	if len(calendar.Periods) != 10 {
		t.Fatalf("expected 10 period days over 2 cycles, got %d", len(calendar.Periods))
	}
	if calendar.Periods[0] != "2025-03-01" || calendar.Periods[4] != "2025-03-05" {
		t.Fatalf("unexpected first cycle period days: %v", calendar.Periods[:5])
	}
	if calendar.Periods[5] != "2025-03-29" {
		t.Fatalf("expected second period to start 2025-03-29, got %s", calendar.Periods[5])
	}

	if len(calendar.OvulationDays) != 2 || calendar.OvulationDays[0] != "2025-03-15" {
		t.Fatalf("unexpected ovulation days: %v", calendar.OvulationDays)
	}

	// Fertile window runs from five days before ovulation to one day after.
	if len(calendar.FertileDays) != 14 {
		t.Fatalf("expected 14 fertile days, got %d", len(calendar.FertileDays))
	}
	if calendar.FertileDays[0] != "2025-03-10" || calendar.FertileDays[6] != "2025-03-16" {
		t.Fatalf("unexpected fertile window: %v", calendar.FertileDays[:7])
	}
}

func TestBuildFertilityCalendarExcludesPeriodDays(t *testing.T) {
	// A short cycle makes the fertile window overlap the period.
	cycle := models.CycleData{
		LastPeriodDate: "2025-01-10",
		CycleLength:    18,
		PeriodLength:   5,
	}

	calendar := BuildFertilityCalendar(cycle, 1, true)

	if len(calendar.FertileDays) != 2 {
		t.Fatalf("expected only 2 fertile days outside the period, got %v", calendar.FertileDays)
	}
	if calendar.FertileDays[0] != "2025-01-09" || calendar.FertileDays[1] != "2025-01-15" {
		t.Fatalf("unexpected fertile days: %v", calendar.FertileDays)
	}
}

func TestBuildFertilityCalendarInvalidAnchor(t *testing.T) {
	calendar := BuildFertilityCalendar(models.CycleData{LastPeriodDate: "not-a-date"}, 3, false)
	if len(calendar.Periods) != 0 || len(calendar.FertileDays) != 0 || len(calendar.OvulationDays) != 0 {
		t.Fatalf("expected empty calendar for invalid anchor, got %+v", calendar)
	}
}

func TestBuildFertilityPredictionsRollsAnchorForward(t *testing.T) {
	cycle := models.CycleData{
		LastPeriodDate: "2025-01-01",
		CycleLength:    28,
		PeriodLength:   5,
	}
	now := time.Date(2025, time.March, 5, 8, 0, 0, 0, time.UTC)

	predictions := BuildFertilityPredictions(cycle, now)

	if !predictions.HasData {
		t.Fatal("expected predictions to carry data")
	}
	if predictions.TodayStatus != FertilityStatusSafe {
		t.Fatalf("expected safe status, got %s", predictions.TodayStatus)
	}
	if predictions.NextPeriod != "2025-03-26" || predictions.DaysToPeriod != 21 {
		t.Fatalf("unexpected next period: %s in %d days", predictions.NextPeriod, predictions.DaysToPeriod)
	}
	if predictions.NextOvulation != "2025-03-12" || predictions.DaysToOvulation != 7 {
		t.Fatalf("unexpected ovulation: %s in %d days", predictions.NextOvulation, predictions.DaysToOvulation)
	}
	if predictions.NextFertileStart != "2025-03-07" || predictions.DaysToFertile != 2 {
		t.Fatalf("unexpected fertile start: %s in %d days", predictions.NextFertileStart, predictions.DaysToFertile)
	}
	if predictions.IsTryingToConceiveDay {
		t.Fatal("safe day must not be flagged for conceiving")
	}
}

func TestBuildFertilityPredictionsStatuses(t *testing.T) {
	cycle := models.CycleData{
		LastPeriodDate: "2025-03-01",
		CycleLength:    28,
		PeriodLength:   5,
	}

	cases := []struct {
		name     string
		today    time.Time
		expected string
	}{
		{"period day", time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC), FertilityStatusPeriod},
		{"fertile day", time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC), FertilityStatusFertile},
		{"ovulation day", time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), FertilityStatusOvulation},
		{"safe day", time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC), FertilityStatusSafe},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			predictions := BuildFertilityPredictions(cycle, tc.today)
			if predictions.TodayStatus != tc.expected {
				t.Fatalf("expected %s, got %s", tc.expected, predictions.TodayStatus)
			}
		})
	}
}

func TestEmptyFertilityPredictions(t *testing.T) {
	predictions := EmptyFertilityPredictions()
	if predictions.HasData {
		t.Fatal("empty predictions must not claim data")
	}
	if predictions.FertilityTip != "Configura il ciclo per vedere le previsioni" {
		t.Fatalf("unexpected tip: %s", predictions.FertilityTip)
	}
}
