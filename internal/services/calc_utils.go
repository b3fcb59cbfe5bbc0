package services

import (
	"math"
	"time"
)

func dateOnly(value time.Time) time.Time {
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, value.Location())
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}

func capFloat(value float64, limit float64) float64 {
	if value > limit {
		return limit
	}
	return value
}

func minInt(a int, b int) int {
	if a < b {
		return a
	}
	return b
}

func parseDay(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}

func formatDay(value time.Time) string {
	return value.Format("2006-01-02")
}
