package services

import (
	"github.com/coupletrack/bliss/internal/models"
)

type MoodStats struct {
	AvgMood      float64 `json:"avg_mood"`
	AvgEnergy    float64 `json:"avg_energy"`
	AvgStress    float64 `json:"avg_stress"`
	AvgLibido    float64 `json:"avg_libido"`
	SyncScore    float64 `json:"sync_score"`
	BestDay      string  `json:"best_day,omitempty"`
	EntriesCount int     `json:"entries_count"`
}

// BuildMoodStats averages the couple's recent entries and measures how in
// sync the partners are. The sync score only counts days on which both
// partners logged: per day it is 1 - |mood delta|/4, averaged and scaled
// to 0-100.
func BuildMoodStats(entries []models.MoodEntry) MoodStats {
	if len(entries) == 0 {
		return MoodStats{}
	}

	var moodSum, energySum, stressSum, libidoSum int
	byDate := make(map[string][]models.MoodEntry)
	for _, entry := range entries {
		moodSum += entry.Mood
		energySum += entry.Energy
		stressSum += entry.Stress
		libidoSum += entry.Libido
		byDate[entry.Date] = append(byDate[entry.Date], entry)
	}

	count := float64(len(entries))
	stats := MoodStats{
		AvgMood:      round1(float64(moodSum) / count),
		AvgEnergy:    round1(float64(energySum) / count),
		AvgStress:    round1(float64(stressSum) / count),
		AvgLibido:    round1(float64(libidoSum) / count),
		EntriesCount: len(entries),
	}

	syncSum := 0.0
	syncDays := 0
	for _, dayEntries := range byDate {
		if len(dayEntries) != 2 {
			continue
		}
		delta := dayEntries[0].Mood - dayEntries[1].Mood
		if delta < 0 {
			delta = -delta
		}
		syncSum += 1 - float64(delta)/4
		syncDays++
	}
	if syncDays > 0 {
		stats.SyncScore = round1(syncSum / float64(syncDays) * 100)
	}

	stats.BestDay = bestMoodWeekday(entries)
	return stats
}

func bestMoodWeekday(entries []models.MoodEntry) string {
	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, entry := range entries {
		day, err := parseDay(entry.Date)
		if err != nil {
			continue
		}
		name := italianWeekday(day.Weekday())
		sums[name] += entry.Mood
		counts[name]++
	}

	best := ""
	bestAvg := 0.0
	for name, sum := range sums {
		avg := float64(sum) / float64(counts[name])
		if avg > bestAvg {
			bestAvg = avg
			best = name
		}
	}
	return best
}
