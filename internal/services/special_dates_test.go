package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/coupletrack/bliss/internal/models"
)

func TestBuildSpecialDatesViewSplitsAroundToday(t *testing.T) {
	now := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)
	dates := []models.SpecialDate{
		{ID: "future2", Title: "Compleanno", Date: "2025-07-01"},
		{ID: "past1", Title: "Primo bacio", Date: "2025-02-14"},
		{ID: "future1", Title: "Anniversario", Date: "2025-06-20"},
		{ID: "today", Title: "Oggi", Date: "2025-06-15"},
	}

	view := BuildSpecialDatesView(dates, now)

	if len(view.Upcoming) != 3 {
		t.Fatalf("expected 3 upcoming dates (today included), got %d", len(view.Upcoming))
	}
	if view.Upcoming[0].ID != "today" || view.Upcoming[1].ID != "future1" {
		t.Fatalf("upcoming dates out of order: %v", view.Upcoming)
	}
	if len(view.Past) != 1 || view.Past[0].ID != "past1" {
		t.Fatalf("unexpected past dates: %v", view.Past)
	}

	if view.NextDate == nil || view.NextDate.ID != "today" {
		t.Fatalf("unexpected next date: %+v", view.NextDate)
	}
	if view.DaysUntilNext == nil || *view.DaysUntilNext != 0 {
		t.Fatalf("expected 0 days until next, got %v", view.DaysUntilNext)
	}
}

func TestBuildSpecialDatesViewKeepsLastFivePast(t *testing.T) {
	now := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)
	dates := make([]models.SpecialDate, 0, 8)
	for month := 1; month <= 8; month++ {
		dates = append(dates, models.SpecialDate{
			ID:   fmt.Sprintf("d%d", month),
			Date: fmt.Sprintf("2025-%02d-10", month),
		})
	}

	view := BuildSpecialDatesView(dates, now)
	if len(view.Past) != 5 {
		t.Fatalf("expected only the 5 most recent past dates, got %d", len(view.Past))
	}
	if view.Past[0].ID != "d4" || view.Past[4].ID != "d8" {
		t.Fatalf("unexpected past window: %v", view.Past)
	}
	if view.NextDate != nil {
		t.Fatalf("no upcoming dates expected, got %+v", view.NextDate)
	}
}

func TestBuildSpecialDatesViewCountdown(t *testing.T) {
	now := time.Date(2025, time.June, 15, 23, 0, 0, 0, time.UTC)
	view := BuildSpecialDatesView([]models.SpecialDate{
		{ID: "next", Date: "2025-06-20"},
	}, now)

	if view.DaysUntilNext == nil || *view.DaysUntilNext != 5 {
		t.Fatalf("expected 5 days until next, got %v", view.DaysUntilNext)
	}
}
