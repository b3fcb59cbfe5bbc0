package api

import (
	"strings"
	"time"

	"github.com/coupletrack/bliss/internal/models"
	"github.com/coupletrack/bliss/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const defaultMoodWindowDays = 30

type saveMoodRequest struct {
	Date   string `json:"date"`
	Mood   int    `json:"mood"`
	Energy int    `json:"energy"`
	Stress int    `json:"stress"`
	Libido int    `json:"libido"`
	Notes  string `json:"notes"`
}

func (handler *Handler) SaveMood(c *fiber.Ctx) error {
	var request saveMoodRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	now := time.Now()
	day := strings.TrimSpace(request.Date)
	if day == "" {
		day = now.Format(models.DayFormat)
	} else if _, err := time.Parse(models.DayFormat, day); err != nil {
		return apiError(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD")
	}
	for _, rating := range []int{request.Mood, request.Energy, request.Stress, request.Libido} {
		if !validRating(rating) {
			return apiError(c, fiber.StatusBadRequest, "mood, energy, stress and libido must be between 1 and 5")
		}
	}

	handler.ensureDependencies()
	actor := currentUser(c)
	entry := models.MoodEntry{
		ID:         uuid.NewString(),
		UserID:     actor.ID,
		CoupleCode: actor.CoupleCode,
		Date:       day,
		Mood:       request.Mood,
		Energy:     request.Energy,
		Stress:     request.Stress,
		Libido:     request.Libido,
		Notes:      strings.TrimSpace(request.Notes),
		CreatedAt:  now,
	}
	if err := handler.repositories.Moods.Upsert(&entry); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save mood")
	}
	return c.JSON(entry)
}

func (handler *Handler) ListMoods(c *fiber.Ctx) error {
	days := c.QueryInt("days", defaultMoodWindowDays)
	if days <= 0 {
		days = defaultMoodWindowDays
	}

	handler.ensureDependencies()
	entries, err := handler.repositories.Moods.ListByCouple(c.Params("couple_code"))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load moods")
	}
	cutoff := time.Now().AddDate(0, 0, -days).Format(models.DayFormat)
	return c.JSON(filterMoodsSince(entries, cutoff))
}

// TodayMoods returns today's entries for both partners, at most one each.
func (handler *Handler) TodayMoods(c *fiber.Ctx) error {
	handler.ensureDependencies()
	entries, err := handler.repositories.Moods.ListByCouple(c.Params("couple_code"))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load moods")
	}

	today := time.Now().Format(models.DayFormat)
	todays := make([]models.MoodEntry, 0, 2)
	for _, entry := range entries {
		if entry.Date == today {
			todays = append(todays, entry)
		}
	}
	return c.JSON(todays)
}

func (handler *Handler) MoodStats(c *fiber.Ctx) error {
	handler.ensureDependencies()
	entries, err := handler.repositories.Moods.ListByCouple(c.Params("couple_code"))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load moods")
	}
	cutoff := time.Now().AddDate(0, 0, -defaultMoodWindowDays).Format(models.DayFormat)
	return c.JSON(services.BuildMoodStats(filterMoodsSince(entries, cutoff)))
}

func filterMoodsSince(entries []models.MoodEntry, cutoff string) []models.MoodEntry {
	recent := make([]models.MoodEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.Date >= cutoff {
			recent = append(recent, entry)
		}
	}
	return recent
}
