package api

import (
	"errors"
	"strings"
	"time"

	"github.com/coupletrack/bliss/internal/models"
	"github.com/coupletrack/bliss/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const (
	fertilityCalendarCycles = 6
	coupleCalendarCycles    = 3
)

type saveCycleRequest struct {
	LastPeriodDate string `json:"last_period_date"`
	CycleLength    int    `json:"cycle_length"`
	PeriodLength   int    `json:"period_length"`
}

type startPeriodRequest struct {
	StartDate string `json:"start_date"`
	Notes     string `json:"notes"`
}

type endPeriodRequest struct {
	EndDate string `json:"end_date"`
}

func (handler *Handler) SaveCycle(c *fiber.Ctx) error {
	var request saveCycleRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if _, err := time.Parse(models.DayFormat, strings.TrimSpace(request.LastPeriodDate)); err != nil {
		return apiError(c, fiber.StatusBadRequest, "last_period_date must be YYYY-MM-DD")
	}

	handler.ensureDependencies()
	actor := currentUser(c)
	cycle, err := handler.cycleService.SaveCycle(actor.ID, strings.TrimSpace(request.LastPeriodDate), request.CycleLength, request.PeriodLength, time.Now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save cycle data")
	}
	return c.JSON(cycle)
}

func (handler *Handler) GetCycle(c *fiber.Ctx) error {
	handler.ensureDependencies()
	cycle, err := handler.cycleService.CycleForUser(c.Params("user_id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "Cycle data not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load cycle data")
	}
	return c.JSON(cycle)
}

func (handler *Handler) FertilityCalendar(c *fiber.Ctx) error {
	handler.ensureDependencies()
	cycle, err := handler.cycleService.CycleForUser(c.Params("user_id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "Cycle data not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load cycle data")
	}
	return c.JSON(services.BuildFertilityCalendar(cycle, fertilityCalendarCycles, false))
}

// CoupleFertilityCalendar is the shared view: fewer cycles, period days left
// out, meant for the partner's read-only calendar.
func (handler *Handler) CoupleFertilityCalendar(c *fiber.Ctx) error {
	handler.ensureDependencies()
	cycle, err := handler.repositories.Cycles.FindByCoupleCode(c.Params("couple_code"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "Cycle data not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load cycle data")
	}
	return c.JSON(services.BuildFertilityCalendar(cycle, coupleCalendarCycles, true))
}

func (handler *Handler) FertilityPredictions(c *fiber.Ctx) error {
	handler.ensureDependencies()
	cycle, err := handler.cycleService.CycleForUser(c.Params("user_id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(services.EmptyFertilityPredictions())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load cycle data")
	}
	return c.JSON(services.BuildFertilityPredictions(cycle, time.Now()))
}

func (handler *Handler) StartPeriod(c *fiber.Ctx) error {
	var request startPeriodRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	now := time.Now()
	startDate := strings.TrimSpace(request.StartDate)
	if startDate == "" {
		startDate = now.Format(models.DayFormat)
	} else if _, err := time.Parse(models.DayFormat, startDate); err != nil {
		return apiError(c, fiber.StatusBadRequest, "start_date must be YYYY-MM-DD")
	}

	handler.ensureDependencies()
	actor := currentUser(c)
	result, err := handler.cycleService.StartPeriod(actor.ID, startDate, strings.TrimSpace(request.Notes), now)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to record period start")
	}
	return c.JSON(result)
}

func (handler *Handler) EndPeriod(c *fiber.Ctx) error {
	var request endPeriodRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	endDate := strings.TrimSpace(request.EndDate)
	if endDate == "" {
		endDate = time.Now().Format(models.DayFormat)
	} else if _, err := time.Parse(models.DayFormat, endDate); err != nil {
		return apiError(c, fiber.StatusBadRequest, "end_date must be YYYY-MM-DD")
	}

	handler.ensureDependencies()
	actor := currentUser(c)
	if err := handler.cycleService.EndPeriod(actor.ID, c.Params("id"), endDate); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "Period record not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to record period end")
	}
	return c.JSON(fiber.Map{"message": "Period end recorded"})
}

func (handler *Handler) CycleHistory(c *fiber.Ctx) error {
	handler.ensureDependencies()
	report, err := handler.cycleService.HistoryReport(c.Params("user_id"))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load cycle history")
	}
	return c.JSON(report)
}
