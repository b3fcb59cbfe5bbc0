package services

import (
	"time"

	"github.com/coupletrack/bliss/internal/models"
)

const (
	FertilityStatusPeriod    = "period"
	FertilityStatusFertile   = "fertile"
	FertilityStatusOvulation = "ovulation"
	FertilityStatusSafe      = "safe"
)

type FertilityCalendar struct {
	Periods       []string `json:"periods"`
	FertileDays   []string `json:"fertile_days"`
	OvulationDays []string `json:"ovulation_days"`
}

type FertilityPredictions struct {
	HasData               bool   `json:"has_data"`
	TodayStatus           string `json:"today_status,omitempty"`
	TodayStatusText       string `json:"today_status_text,omitempty"`
	TodayStatusColor      string `json:"today_status_color,omitempty"`
	FertilityTip          string `json:"fertility_tip"`
	NextPeriod            string `json:"next_period,omitempty"`
	DaysToPeriod          int    `json:"days_to_period"`
	NextOvulation         string `json:"next_ovulation,omitempty"`
	DaysToOvulation       int    `json:"days_to_ovulation"`
	NextFertileStart      string `json:"next_fertile_start,omitempty"`
	DaysToFertile         int    `json:"days_to_fertile"`
	IsTryingToConceiveDay bool   `json:"is_trying_to_conceive_day"`
}

// BuildFertilityCalendar projects period, fertile and ovulation days over the
// next `cycles` cycles starting from the recorded last period. Ovulation sits
// a luteal phase before the following period; the fertile window runs from
// five days before ovulation to one day after. With excludePeriodDays set,
// fertile days that fall on projected period days are left out.
func BuildFertilityCalendar(cycle models.CycleData, cycles int, excludePeriodDays bool) FertilityCalendar {
	calendar := FertilityCalendar{
		Periods:       []string{},
		FertileDays:   []string{},
		OvulationDays: []string{},
	}

	anchor, err := parseDay(cycle.LastPeriodDate)
	if err != nil {
		return calendar
	}
	cycleLength := normalizedCycleLength(cycle.CycleLength)
	periodLength := normalizedPeriodLength(cycle.PeriodLength)

	periodDays := make(map[string]bool)
	start := anchor
	for index := 0; index < cycles; index++ {
		for offset := 0; offset < periodLength; offset++ {
			day := formatDay(start.AddDate(0, 0, offset))
			calendar.Periods = append(calendar.Periods, day)
			periodDays[day] = true
		}

		ovulation := start.AddDate(0, 0, cycleLength-models.LutealPhaseDays)
		calendar.OvulationDays = append(calendar.OvulationDays, formatDay(ovulation))

		for offset := -5; offset <= 1; offset++ {
			day := formatDay(ovulation.AddDate(0, 0, offset))
			if excludePeriodDays && periodDays[day] {
				continue
			}
			calendar.FertileDays = append(calendar.FertileDays, day)
		}

		start = start.AddDate(0, 0, cycleLength)
	}
	return calendar
}

// BuildFertilityPredictions classifies today within the current cycle and
// names the next period, ovulation and fertile window. The anchor rolls
// forward so the current cycle always contains today.
func BuildFertilityPredictions(cycle models.CycleData, now time.Time) FertilityPredictions {
	anchor, err := parseDay(cycle.LastPeriodDate)
	if err != nil {
		return EmptyFertilityPredictions()
	}
	cycleLength := normalizedCycleLength(cycle.CycleLength)
	periodLength := normalizedPeriodLength(cycle.PeriodLength)
	today := dateOnly(now)

	cycleStart := anchor
	for !cycleStart.AddDate(0, 0, cycleLength).After(today) {
		cycleStart = cycleStart.AddDate(0, 0, cycleLength)
	}

	nextPeriod := cycleStart.AddDate(0, 0, cycleLength)
	ovulation := cycleStart.AddDate(0, 0, cycleLength-models.LutealPhaseDays)
	fertileStart := ovulation.AddDate(0, 0, -5)
	fertileEnd := ovulation.AddDate(0, 0, 1)
	periodEnd := cycleStart.AddDate(0, 0, periodLength-1)

	predictions := FertilityPredictions{HasData: true}
	switch {
	case !today.Before(cycleStart) && !today.After(periodEnd):
		predictions.TodayStatus = FertilityStatusPeriod
		predictions.TodayStatusText = "Ciclo mestruale"
		predictions.TodayStatusColor = "#ff4757"
		predictions.FertilityTip = "Riposo e cura di te. Momenti di intimità possono aiutare con i crampi!"
	case !today.Before(fertileStart) && !today.After(fertileEnd):
		if today.Equal(ovulation) {
			predictions.TodayStatus = FertilityStatusOvulation
			predictions.TodayStatusText = "Ovulazione - Massima fertilità!"
			predictions.TodayStatusColor = "#ffa502"
			predictions.FertilityTip = "Oggi è il giorno ideale per concepire! Massima fertilità."
		} else {
			predictions.TodayStatus = FertilityStatusFertile
			predictions.TodayStatusText = "Finestra fertile"
			predictions.TodayStatusColor = "#2ed573"
			predictions.FertilityTip = "Alta probabilità di concepimento. Giorni ideali per provare!"
		}
	default:
		predictions.TodayStatus = FertilityStatusSafe
		predictions.TodayStatusText = "Giorni sicuri"
		predictions.TodayStatusColor = "#1e90ff"
		predictions.FertilityTip = "Bassa probabilità di concepimento. Momento ideale per intimità senza pensieri!"
	}

	daysToFertile := daysBetween(today, fertileStart)
	predictions.NextPeriod = formatDay(nextPeriod)
	predictions.DaysToPeriod = maxInt(0, daysBetween(today, nextPeriod))
	predictions.NextOvulation = formatDay(ovulation)
	predictions.DaysToOvulation = daysBetween(today, ovulation)
	if daysToFertile > 0 {
		predictions.NextFertileStart = formatDay(fertileStart)
		predictions.DaysToFertile = daysToFertile
	}
	predictions.IsTryingToConceiveDay = predictions.TodayStatus == FertilityStatusFertile ||
		predictions.TodayStatus == FertilityStatusOvulation
	return predictions
}

func EmptyFertilityPredictions() FertilityPredictions {
	return FertilityPredictions{
		FertilityTip: "Configura il ciclo per vedere le previsioni",
	}
}

func normalizedCycleLength(length int) int {
	if length <= 0 {
		return models.DefaultCycleLength
	}
	return length
}

func normalizedPeriodLength(length int) int {
	if length <= 0 {
		return models.DefaultPeriodLength
	}
	return length
}

func daysBetween(from time.Time, to time.Time) int {
	return int(dateOnly(to).Sub(dateOnly(from)).Hours() / 24)
}

func maxInt(a int, b int) int {
	if a > b {
		return a
	}
	return b
}
