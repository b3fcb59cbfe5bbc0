package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/coupletrack/bliss/internal/models"
)

func makeEntry(date string, quality int) models.IntimacyEntry {
	return models.IntimacyEntry{Date: date, QualityRating: quality}
}

func mustParseDay(t *testing.T, value string) time.Time {
	t.Helper()
	day, err := parseDay(value)
	if err != nil {
		t.Fatalf("parse day %s: %v", value, err)
	}
	return day
}

func TestBuildIntimacyStatsEmptyHistory(t *testing.T) {
	stats := BuildIntimacyStats(nil, time.Date(2025, time.March, 5, 12, 0, 0, 0, time.UTC))

	if stats.TotalCount != 0 {
		t.Fatalf("expected zero total, got %d", stats.TotalCount)
	}
	if stats.SessometroLevel != "Nuova Coppia" || stats.LevelEmoji != "🌱" {
		t.Fatalf("unexpected level for empty history: %s %s", stats.SessometroLevel, stats.LevelEmoji)
	}
	if stats.PassionTrend != TrendStable {
		t.Fatalf("expected stable trend, got %s", stats.PassionTrend)
	}
	if stats.NextMilestone != "Prima volta insieme" {
		t.Fatalf("unexpected milestone: %s", stats.NextMilestone)
	}
	if len(stats.Badges) != 0 {
		t.Fatalf("expected no badges, got %v", stats.Badges)
	}
	if stats.FunStats.RomanceVsPassion != "equilibrato" {
		t.Fatalf("unexpected romance band: %s", stats.FunStats.RomanceVsPassion)
	}
}

func TestBuildIntimacyStatsTwoWeekStreak(t *testing.T) {
	now := time.Date(2025, time.January, 10, 18, 0, 0, 0, time.UTC)
	entries := []models.IntimacyEntry{
		makeEntry("2025-01-01", 5),
		makeEntry("2025-01-08", 3),
	}

	stats := BuildIntimacyStats(entries, now)

	if stats.TotalCount != 2 || stats.MonthlyCount != 2 || stats.WeeklyCount != 1 {
		t.Fatalf("unexpected counts: total=%d monthly=%d weekly=%d", stats.TotalCount, stats.MonthlyCount, stats.WeeklyCount)
	}
	if stats.AverageQuality != 4.0 {
		t.Fatalf("expected average quality 4.0, got %.1f", stats.AverageQuality)
	}
	if stats.Streak != 2 || stats.BestStreak != 2 {
		t.Fatalf("expected streak 2/2, got %d/%d", stats.Streak, stats.BestStreak)
	}
	if stats.PassionTrend != TrendRising {
		t.Fatalf("expected rising trend on zero baseline, got %s", stats.PassionTrend)
	}
	if stats.FavoriteDay != "Mercoledì" {
		t.Fatalf("expected favorite day Mercoledì, got %s", stats.FavoriteDay)
	}
	if stats.SessometroScore != 4.2 {
		t.Fatalf("expected score 4.2, got %.1f", stats.SessometroScore)
	}
	if stats.SessometroLevel != "Armonia Dolce" {
		t.Fatalf("unexpected level: %s", stats.SessometroLevel)
	}
	if stats.NextMilestone != "Ancora 8 per il badge 'Affiatati'" {
		t.Fatalf("unexpected milestone: %s", stats.NextMilestone)
	}

	expectedBadges := []string{"first_time", "week_streak"}
	if len(stats.Badges) != len(expectedBadges) {
		t.Fatalf("expected badges %v, got %v", expectedBadges, stats.Badges)
	}
	for i, badge := range expectedBadges {
		if stats.Badges[i] != badge {
			t.Fatalf("expected badges %v, got %v", expectedBadges, stats.Badges)
		}
	}
}

func TestBuildIntimacyStatsFrequencyCapsAtTwelveMonthly(t *testing.T) {
	now := time.Date(2025, time.June, 30, 10, 0, 0, 0, time.UTC)
	entries := make([]models.IntimacyEntry, 0, 20)
	for day := 1; day <= 20; day++ {
		entries = append(entries, makeEntry(fmt.Sprintf("2025-06-%02d", day), 4))
	}

	stats := BuildIntimacyStats(entries, now)
	if stats.ScoreBreakdown.Frequency != 10 {
		t.Fatalf("expected frequency component capped at 10, got %.1f", stats.ScoreBreakdown.Frequency)
	}
	hasPerfectMonth := false
	for _, badge := range stats.Badges {
		if badge == "perfect_month" {
			hasPerfectMonth = true
		}
	}
	if !hasPerfectMonth {
		t.Fatalf("expected perfect_month badge, got %v", stats.Badges)
	}
}

func TestWeeklyStreaksGapBreaksRun(t *testing.T) {
	now := time.Date(2025, time.March, 14, 9, 0, 0, 0, time.UTC)
	days := []time.Time{
		mustParseDay(t, "2025-03-12"), // current week
		mustParseDay(t, "2025-03-05"), // previous week
		// gap: week of 2025-02-24 missing
		mustParseDay(t, "2025-02-19"),
		mustParseDay(t, "2025-02-12"),
		mustParseDay(t, "2025-02-05"),
	}

	current, best := weeklyStreaks(days, now)
	if current != 2 {
		t.Fatalf("expected current streak 2, got %d", current)
	}
	if best != 3 {
		t.Fatalf("expected best streak 3, got %d", best)
	}
}

func TestWeeklyStreaksToleratesEmptyCurrentWeek(t *testing.T) {
	// No entry this week or last week, then three active weeks. The two
	// leading gaps are tolerated, so the run still counts.
	now := time.Date(2025, time.March, 20, 9, 0, 0, 0, time.UTC)
	days := []time.Time{
		mustParseDay(t, "2025-03-05"),
		mustParseDay(t, "2025-02-26"),
		mustParseDay(t, "2025-02-19"),
	}

	current, _ := weeklyStreaks(days, now)
	if current != 3 {
		t.Fatalf("expected current streak 3, got %d", current)
	}
}

func TestWeeklyStreaksBestIgnoresRunsOlderThanAYear(t *testing.T) {
	// A five-week run from 2023 is outside the 52-week lookback; only the
	// recent two-week run counts toward best.
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	days := []time.Time{
		mustParseDay(t, "2025-05-28"),
		mustParseDay(t, "2025-05-21"),
		mustParseDay(t, "2023-05-01"),
		mustParseDay(t, "2023-05-08"),
		mustParseDay(t, "2023-05-15"),
		mustParseDay(t, "2023-05-22"),
		mustParseDay(t, "2023-05-29"),
	}

	current, best := weeklyStreaks(days, now)
	if current != 2 {
		t.Fatalf("expected current streak 2, got %d", current)
	}
	if best != 2 {
		t.Fatalf("expected best streak 2, got %d", best)
	}
}

func TestFavoriteWeekdayTieBreaksByFirstSeen(t *testing.T) {
	days := []time.Time{
		mustParseDay(t, "2025-01-03"), // Friday
		mustParseDay(t, "2025-01-06"), // Monday
	}
	if got := favoriteWeekday(days); got != "Venerdì" {
		t.Fatalf("expected the first-logged weekday to win the tie, got %s", got)
	}
}

func TestPassionTrendBands(t *testing.T) {
	cases := []struct {
		name      string
		monthly   int
		prevMonth int
		expected  string
	}{
		{"zero baseline active", 3, 0, TrendRising},
		{"zero baseline idle", 0, 0, TrendStable},
		{"rising above 20 percent", 7, 5, TrendRising},
		{"stable within band", 5, 5, TrendStable},
		{"cooling below 20 percent", 3, 5, TrendCooling},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := passionTrend(tc.monthly, tc.prevMonth); got != tc.expected {
				t.Fatalf("expected %s, got %s", tc.expected, got)
			}
		})
	}
}

func TestSessometroLevelBands(t *testing.T) {
	cases := []struct {
		score    float64
		expected string
	}{
		{9.5, "Vulcano in Eruzione"},
		{8.2, "Fuoco e Fiamme"},
		{7.0, "Passione Ardente"},
		{6.0, "Intesa Perfetta"},
		{4.5, "Armonia Dolce"},
		{3.0, "Fiamma Timida"},
		{1.5, "Da Riaccendere"},
		{0.5, "Nuova Coppia"},
	}

	for _, tc := range cases {
		level, _ := sessometroLevel(tc.score)
		if level != tc.expected {
			t.Fatalf("score %.1f: expected %s, got %s", tc.score, tc.expected, level)
		}
	}
}
