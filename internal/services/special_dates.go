package services

import (
	"sort"
	"time"

	"github.com/coupletrack/bliss/internal/models"
)

type SpecialDatesView struct {
	Upcoming      []models.SpecialDate `json:"upcoming"`
	Past          []models.SpecialDate `json:"past"`
	NextDate      *models.SpecialDate  `json:"next_date"`
	DaysUntilNext *int                 `json:"days_until_next"`
}

// BuildSpecialDatesView splits the couple's dates around today and counts
// down to the nearest upcoming one. Only the five most recent past dates
// are kept.
func BuildSpecialDatesView(dates []models.SpecialDate, now time.Time) SpecialDatesView {
	sorted := append([]models.SpecialDate(nil), dates...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	today := formatDay(dateOnly(now))
	view := SpecialDatesView{
		Upcoming: []models.SpecialDate{},
		Past:     []models.SpecialDate{},
	}
	for _, date := range sorted {
		if date.Date >= today {
			view.Upcoming = append(view.Upcoming, date)
		} else {
			view.Past = append(view.Past, date)
		}
	}
	if len(view.Past) > 5 {
		view.Past = view.Past[len(view.Past)-5:]
	}

	if len(view.Upcoming) > 0 {
		next := view.Upcoming[0]
		view.NextDate = &next
		if day, err := parseDay(next.Date); err == nil {
			days := daysBetween(dateOnly(now), day)
			view.DaysUntilNext = &days
		}
	}
	return view
}
