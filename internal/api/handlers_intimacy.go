package api

import (
	"errors"
	"strings"
	"time"

	"github.com/coupletrack/bliss/internal/models"
	"github.com/coupletrack/bliss/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type createIntimacyRequest struct {
	Date            string   `json:"date"`
	QualityRating   int      `json:"quality_rating"`
	PositionsUsed   []string `json:"positions_used"`
	DurationMinutes int      `json:"duration_minutes"`
	Location        string   `json:"location"`
	Notes           string   `json:"notes"`
}

func (handler *Handler) CreateIntimacyEntry(c *fiber.Ctx) error {
	var request createIntimacyRequest
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
	if !validRating(request.QualityRating) {
		return apiError(c, fiber.StatusBadRequest, "quality_rating must be between 1 and 5")
	}
	if request.DurationMinutes < 0 {
		return apiError(c, fiber.StatusBadRequest, "duration_minutes must not be negative")
	}

	positions := request.PositionsUsed
	if positions == nil {
		positions = []string{}
	}

	handler.ensureDependencies()
	actor := currentUser(c)
	entry := models.IntimacyEntry{
		ID:              uuid.NewString(),
		CoupleCode:      actor.CoupleCode,
		Date:            day,
		QualityRating:   request.QualityRating,
		PositionsUsed:   positions,
		DurationMinutes: request.DurationMinutes,
		Location:        strings.TrimSpace(request.Location),
		Notes:           strings.TrimSpace(request.Notes),
		CreatedBy:       actor.ID,
		CreatedAt:       now,
	}
	if err := handler.repositories.Intimacy.Create(&entry); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save entry")
	}

	estimate := services.EstimateCalories(entry.DurationMinutes, entry.PositionsUsed, entry.QualityRating, 0)
	return c.Status(fiber.StatusCreated).JSON(struct {
		models.IntimacyEntry
		CaloriesBurned int `json:"calories_burned"`
	}{entry, estimate.Calories})
}

func (handler *Handler) ListIntimacyEntries(c *fiber.Ctx) error {
	handler.ensureDependencies()
	entries, err := handler.repositories.Intimacy.ListByCouple(c.Params("couple_code"))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load entries")
	}
	return c.JSON(entries)
}

func (handler *Handler) DeleteIntimacyEntry(c *fiber.Ctx) error {
	handler.ensureDependencies()
	actor := currentUser(c)
	if err := handler.repositories.Intimacy.DeleteByID(actor.CoupleCode, c.Params("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "Entry not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete entry")
	}
	return c.JSON(fiber.Map{"message": "Entry deleted"})
}

func (handler *Handler) IntimacyStats(c *fiber.Ctx) error {
	handler.ensureDependencies()
	entries, err := handler.repositories.Intimacy.ListByCouple(c.Params("couple_code"))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load entries")
	}
	return c.JSON(services.BuildIntimacyStats(entries, time.Now()))
}
