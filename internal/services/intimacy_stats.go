package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/coupletrack/bliss/internal/models"
)

// Score weights. Frequency dominates, variety is a tiebreaker.
const (
	frequencyWeight   = 0.30
	qualityWeight     = 0.25
	consistencyWeight = 0.20
	trendWeight       = 0.15
	varietyWeight     = 0.10

	maxMonthlyEntries = 12 // frequency component saturates here
	maxStreakWeeks    = 8  // consistency component saturates here
)

const (
	TrendRising  = "rising"
	TrendStable  = "stable"
	TrendCooling = "cooling"
)

type FunStats struct {
	TotalHoursEstimated     float64 `json:"total_hours_estimated"`
	CaloriesBurnedEstimated int     `json:"calories_burned_estimated"`
	MoodBoostScore          int     `json:"mood_boost_score"`
	SpontaneityScore        int     `json:"spontaneity_score"`
	RomanceVsPassion        string  `json:"romance_vs_passion"`
}

type ScoreBreakdown struct {
	Frequency   float64 `json:"frequency"`
	Quality     float64 `json:"quality"`
	Consistency float64 `json:"consistency"`
	Trend       float64 `json:"trend"`
	Variety     float64 `json:"variety"`
}

type IntimacyStats struct {
	TotalCount      int            `json:"total_count"`
	MonthlyCount    int            `json:"monthly_count"`
	WeeklyCount     int            `json:"weekly_count"`
	AverageQuality  float64        `json:"average_quality"`
	SessometroLevel string         `json:"sessometro_level"`
	LevelEmoji      string         `json:"sessometro_level_emoji"`
	SessometroScore float64        `json:"sessometro_score"`
	Streak          int            `json:"streak"`
	BestStreak      int            `json:"best_streak"`
	FavoriteDay     string         `json:"favorite_day,omitempty"`
	PassionTrend    string         `json:"passion_trend"`
	FunStats        FunStats       `json:"fun_stats"`
	Badges          []string       `json:"badges"`
	NextMilestone   string         `json:"next_milestone"`
	ScoreBreakdown  ScoreBreakdown `json:"score_breakdown"`
}

// BuildIntimacyStats computes the couple's full scoreboard from their raw
// entries. Entries with unparseable dates are ignored. The result for an
// empty history is a fully zeroed scoreboard, not an error.
func BuildIntimacyStats(entries []models.IntimacyEntry, now time.Time) IntimacyStats {
	if len(entries) == 0 {
		return IntimacyStats{
			SessometroLevel: "Nuova Coppia",
			LevelEmoji:      "🌱",
			PassionTrend:    TrendStable,
			FunStats:        FunStats{RomanceVsPassion: "equilibrato"},
			Badges:          []string{},
			NextMilestone:   "Prima volta insieme",
		}
	}

	today := dateOnly(now)
	monthAgo := today.AddDate(0, 0, -30)
	weekAgo := today.AddDate(0, 0, -7)
	twoMonthsAgo := today.AddDate(0, 0, -60)

	days := make([]time.Time, 0, len(entries))
	var monthly, weekly, prevMonth []models.IntimacyEntry
	qualitySum := 0
	for _, entry := range entries {
		day, err := entry.Day()
		if err != nil {
			continue
		}
		days = append(days, day)
		qualitySum += entry.QualityRating
		if !day.Before(monthAgo) {
			monthly = append(monthly, entry)
		}
		if !day.Before(weekAgo) {
			weekly = append(weekly, entry)
		}
		if !day.Before(twoMonthsAgo) && day.Before(monthAgo) {
			prevMonth = append(prevMonth, entry)
		}
	}
	if len(days) == 0 {
		return BuildIntimacyStats(nil, now)
	}

	avgQuality := float64(qualitySum) / float64(len(days))
	monthlyAvgQuality := averageQuality(monthly)

	streak, bestStreak := weeklyStreaks(days, now)
	trend := passionTrend(len(monthly), len(prevMonth))
	spontaneity := spontaneityScore(monthly)

	frequencyScore := capFloat(float64(len(monthly))/maxMonthlyEntries*10, 10)
	qualityScore := avgQuality / 5 * 10
	streakScore := capFloat(float64(streak)/maxStreakWeeks*10, 10)
	trendScore := 5.0
	switch trend {
	case TrendRising:
		trendScore = 7
	case TrendCooling:
		trendScore = 3
	}
	varietyScore := float64(spontaneity) / 10

	score := frequencyScore*frequencyWeight +
		qualityScore*qualityWeight +
		streakScore*consistencyWeight +
		trendScore*trendWeight +
		varietyScore*varietyWeight

	level, emoji := sessometroLevel(score)

	stats := IntimacyStats{
		TotalCount:      len(days),
		MonthlyCount:    len(monthly),
		WeeklyCount:     len(weekly),
		AverageQuality:  round1(avgQuality),
		SessometroLevel: level,
		LevelEmoji:      emoji,
		SessometroScore: round1(score),
		Streak:          streak,
		BestStreak:      bestStreak,
		FavoriteDay:     favoriteWeekday(days),
		PassionTrend:    trend,
		FunStats: FunStats{
			TotalHoursEstimated:     round1(float64(len(days)) * 25 / 60),
			CaloriesBurnedEstimated: len(days) * 150,
			MoodBoostScore:          minInt(100, len(monthly)*5+int(avgQuality*10)),
			SpontaneityScore:        spontaneity,
			RomanceVsPassion:        romanceVsPassion(len(monthly), monthlyAvgQuality),
		},
		Badges:        collectBadges(entries, len(monthly), streak, avgQuality),
		NextMilestone: nextMilestone(len(days)),
		ScoreBreakdown: ScoreBreakdown{
			Frequency:   round1(frequencyScore),
			Quality:     round1(qualityScore),
			Consistency: round1(streakScore),
			Trend:       round1(trendScore),
			Variety:     round1(varietyScore),
		},
	}
	return stats
}

// weeklyStreaks walks back one ISO week at a time from the current one. The
// current and previous week may be empty without breaking the run, so a
// couple is not punished mid-week. Any older gap ends the current streak.
// The best streak is the longest unbroken run of active weeks inside the
// same 52-week lookback; older history does not count.
func weeklyStreaks(days []time.Time, now time.Time) (current int, best int) {
	if len(days) == 0 {
		return 0, 0
	}

	active := make(map[string]bool, len(days))
	mondays := make(map[time.Time]bool, len(days))
	for _, day := range days {
		active[isoWeekKey(day)] = true
		mondays[isoWeekMonday(day)] = true
	}

	cursor := isoWeekMonday(now)
	for offset := 0; offset < 52; offset++ {
		if active[isoWeekKey(cursor)] {
			current++
		} else if offset >= 2 {
			break
		}
		cursor = cursor.AddDate(0, 0, -7)
	}

	lookbackLimit := isoWeekMonday(now).AddDate(0, 0, -7*51)
	sorted := make([]time.Time, 0, len(mondays))
	for monday := range mondays {
		if monday.Before(lookbackLimit) {
			continue
		}
		sorted = append(sorted, monday)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	run := 0
	for index, monday := range sorted {
		if index > 0 && sorted[index-1].AddDate(0, 0, 7).Equal(monday) {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
	}
	if current > best {
		best = current
	}
	return current, best
}

func isoWeekKey(day time.Time) string {
	year, week := day.ISOWeek()
	return fmt.Sprintf("%04d-%02d", year, week)
}

func isoWeekMonday(day time.Time) time.Time {
	day = dateOnly(day)
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return day.AddDate(0, 0, 1-weekday)
}

func passionTrend(monthlyCount int, prevMonthCount int) string {
	if prevMonthCount == 0 {
		if monthlyCount > 0 {
			return TrendRising
		}
		return TrendStable
	}
	change := float64(monthlyCount-prevMonthCount) / float64(prevMonthCount) * 100
	switch {
	case change > 20:
		return TrendRising
	case change < -20:
		return TrendCooling
	default:
		return TrendStable
	}
}

func spontaneityScore(monthly []models.IntimacyEntry) int {
	if len(monthly) == 0 {
		return 0
	}
	weekdays := make(map[time.Weekday]bool, 7)
	for _, entry := range monthly {
		if day, err := entry.Day(); err == nil {
			weekdays[day.Weekday()] = true
		}
	}
	return int(float64(len(weekdays)) / 7 * 100)
}

func romanceVsPassion(monthlyCount int, monthlyAvgQuality float64) string {
	switch {
	case monthlyCount > 8 && monthlyAvgQuality > 4:
		return "fuoco totale"
	case monthlyCount > 8 && monthlyAvgQuality < 3.5:
		return "più passione"
	case monthlyCount < 4 && monthlyAvgQuality > 4:
		return "più romanticismo"
	default:
		return "equilibrato"
	}
}

func sessometroLevel(score float64) (string, string) {
	switch {
	case score >= 9:
		return "Vulcano in Eruzione", "🌋"
	case score >= 8:
		return "Fuoco e Fiamme", "🔥"
	case score >= 7:
		return "Passione Ardente", "💋"
	case score >= 5.5:
		return "Intesa Perfetta", "💕"
	case score >= 4:
		return "Armonia Dolce", "🌸"
	case score >= 2.5:
		return "Fiamma Timida", "🕯️"
	case score >= 1:
		return "Da Riaccendere", "💨"
	default:
		return "Nuova Coppia", "🌱"
	}
}

func collectBadges(entries []models.IntimacyEntry, monthlyCount int, streak int, avgQuality float64) []string {
	badges := make([]string, 0, 8)
	if len(entries) >= 1 {
		badges = append(badges, "first_time")
	}
	if streak >= 1 {
		badges = append(badges, "week_streak")
	}
	if avgQuality > 4 {
		badges = append(badges, "quality_king")
	}

	locations := make(map[string]bool)
	marathon := false
	for _, entry := range entries {
		if entry.Location != "" {
			locations[entry.Location] = true
		}
		if entry.DurationMinutes >= 60 {
			marathon = true
		}
	}
	if len(locations) >= 5 {
		badges = append(badges, "explorer")
	}
	if marathon {
		badges = append(badges, "marathon")
	}
	if len(entries) >= 5 {
		badges = append(badges, "morning")
	}
	if len(entries) >= 8 {
		badges = append(badges, "night_owl")
	}
	if monthlyCount >= 20 {
		badges = append(badges, "perfect_month")
	}
	return badges
}

func nextMilestone(total int) string {
	switch {
	case total < 10:
		return fmt.Sprintf("Ancora %d per il badge 'Affiatati'", 10-total)
	case total < 50:
		return fmt.Sprintf("Ancora %d per il badge 'Veterani'", 50-total)
	case total < 100:
		return fmt.Sprintf("Ancora %d per il badge 'Centenario'", 100-total)
	default:
		return "Siete leggendari! 🏆"
	}
}

// favoriteWeekday breaks ties by which weekday showed up first in the log.
func favoriteWeekday(days []time.Time) string {
	if len(days) == 0 {
		return ""
	}
	counts := make(map[time.Weekday]int, 7)
	order := make([]time.Weekday, 0, 7)
	for _, day := range days {
		weekday := day.Weekday()
		if _, seen := counts[weekday]; !seen {
			order = append(order, weekday)
		}
		counts[weekday]++
	}
	favorite := order[0]
	for _, weekday := range order[1:] {
		if counts[weekday] > counts[favorite] {
			favorite = weekday
		}
	}
	return italianWeekday(favorite)
}

func italianWeekday(weekday time.Weekday) string {
	switch weekday {
	case time.Monday:
		return "Lunedì"
	case time.Tuesday:
		return "Martedì"
	case time.Wednesday:
		return "Mercoledì"
	case time.Thursday:
		return "Giovedì"
	case time.Friday:
		return "Venerdì"
	case time.Saturday:
		return "Sabato"
	default:
		return "Domenica"
	}
}

func averageQuality(entries []models.IntimacyEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	sum := 0
	for _, entry := range entries {
		sum += entry.QualityRating
	}
	return float64(sum) / float64(len(entries))
}
