package services

import (
	"testing"

	"github.com/coupletrack/bliss/internal/models"
)

func moodEntry(userID string, date string, mood int) models.MoodEntry {
	return models.MoodEntry{
		UserID: userID,
		Date:   date,
		Mood:   mood,
		Energy: mood,
		Stress: 3,
		Libido: 3,
	}
}

func TestBuildMoodStatsEmpty(t *testing.T) {
	stats := BuildMoodStats(nil)
	if stats.EntriesCount != 0 || stats.SyncScore != 0 || stats.BestDay != "" {
		t.Fatalf("expected zeroed stats, got %+v", stats)
	}
}

func TestBuildMoodStatsSyncScore(t *testing.T) {
	entries := []models.MoodEntry{
		moodEntry("u1", "2025-03-03", 4),
		moodEntry("u2", "2025-03-03", 2), // delta 2 -> 0.5
		moodEntry("u1", "2025-03-04", 3),
		moodEntry("u2", "2025-03-04", 3), // delta 0 -> 1.0
		moodEntry("u1", "2025-03-05", 5), // solo day, ignored for sync
	}

	stats := BuildMoodStats(entries)
	if stats.EntriesCount != 5 {
		t.Fatalf("expected 5 entries, got %d", stats.EntriesCount)
	}
	if stats.SyncScore != 75.0 {
		t.Fatalf("expected sync score 75.0, got %.1f", stats.SyncScore)
	}
	if stats.AvgMood != 3.4 {
		t.Fatalf("expected average mood 3.4, got %.1f", stats.AvgMood)
	}
	// 2025-03-05 is a Wednesday and carries the highest average mood.
	if stats.BestDay != "Mercoledì" {
		t.Fatalf("expected best day Mercoledì, got %s", stats.BestDay)
	}
}

func TestBuildMoodStatsNoSharedDays(t *testing.T) {
	entries := []models.MoodEntry{
		moodEntry("u1", "2025-03-03", 4),
		moodEntry("u1", "2025-03-04", 2),
	}

	stats := BuildMoodStats(entries)
	if stats.SyncScore != 0 {
		t.Fatalf("sync score needs both partners on a day, got %.1f", stats.SyncScore)
	}
}
