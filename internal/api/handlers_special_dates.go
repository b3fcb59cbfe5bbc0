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

type createSpecialDateRequest struct {
	Title string `json:"title"`
	Date  string `json:"date"`
	Time  string `json:"time"`
	Notes string `json:"notes"`
}

func (handler *Handler) CreateSpecialDate(c *fiber.Ctx) error {
	var request createSpecialDateRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	title := strings.TrimSpace(request.Title)
	if title == "" {
		return apiError(c, fiber.StatusBadRequest, "title is required")
	}
	if _, err := time.Parse(models.DayFormat, strings.TrimSpace(request.Date)); err != nil {
		return apiError(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD")
	}

	handler.ensureDependencies()
	actor := currentUser(c)
	record := models.SpecialDate{
		ID:         uuid.NewString(),
		CoupleCode: actor.CoupleCode,
		Title:      title,
		Date:       strings.TrimSpace(request.Date),
		Time:       strings.TrimSpace(request.Time),
		Notes:      strings.TrimSpace(request.Notes),
		CreatedBy:  actor.ID,
		CreatedAt:  time.Now(),
	}
	if err := handler.repositories.SpecialDates.Create(&record); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save date")
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

func (handler *Handler) ListSpecialDates(c *fiber.Ctx) error {
	handler.ensureDependencies()
	dates, err := handler.repositories.SpecialDates.ListByCouple(c.Params("couple_code"))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load dates")
	}
	return c.JSON(services.BuildSpecialDatesView(dates, time.Now()))
}

func (handler *Handler) DeleteSpecialDate(c *fiber.Ctx) error {
	handler.ensureDependencies()
	actor := currentUser(c)
	if err := handler.repositories.SpecialDates.DeleteByID(actor.CoupleCode, c.Params("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "Date not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete date")
	}
	return c.JSON(fiber.Map{"message": "Date deleted"})
}
