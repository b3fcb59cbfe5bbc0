package api

import (
	"time"

	"github.com/coupletrack/bliss/internal/models"
	"github.com/coupletrack/bliss/internal/services"
	"github.com/gofiber/fiber/v2"
)

type calculateCaloriesRequest struct {
	Duration  int      `json:"duration"`
	Positions []string `json:"positions"`
	Quality   int      `json:"quality"`
	Weight    float64  `json:"weight"`
}

func (handler *Handler) CalculateCalories(c *fiber.Ctx) error {
	var request calculateCaloriesRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if request.Duration < 0 {
		return apiError(c, fiber.StatusBadRequest, "duration must not be negative")
	}
	return c.JSON(services.EstimateCalories(request.Duration, request.Positions, request.Quality, request.Weight))
}

func (handler *Handler) MonthlyCalories(c *fiber.Ctx) error {
	now := time.Now()
	month := c.QueryInt("month", int(now.Month()))
	year := c.QueryInt("year", now.Year())
	if month < 1 || month > 12 {
		return apiError(c, fiber.StatusBadRequest, "month must be between 1 and 12")
	}

	handler.ensureDependencies()
	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	entries, err := handler.repositories.Intimacy.ListByCoupleInRange(
		c.Params("couple_code"),
		monthStart.Format(models.DayFormat),
		monthStart.AddDate(0, 1, -1).Format(models.DayFormat),
	)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load entries")
	}
	return c.JSON(services.BuildMonthlyCalories(entries, time.Month(month), year))
}
