package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

type coachQuestionRequest struct {
	Question string `json:"question"`
}

func (handler *Handler) CoachAnalyze(c *fiber.Ctx) error {
	handler.ensureDependencies()
	actor := currentUser(c)
	analysis, err := handler.coachService.Analyze(c.UserContext(), actor.CoupleCode, time.Now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to analyze couple data")
	}
	return c.JSON(analysis)
}

func (handler *Handler) CoachQuestion(c *fiber.Ctx) error {
	var request coachQuestionRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	question := strings.TrimSpace(request.Question)
	if question == "" {
		return apiError(c, fiber.StatusBadRequest, "question is required")
	}

	handler.ensureDependencies()
	actor := currentUser(c)
	answer := handler.coachService.Question(c.UserContext(), actor.CoupleCode, question)
	return c.JSON(fiber.Map{"answer": answer})
}

func (handler *Handler) CoachInsights(c *fiber.Ctx) error {
	handler.ensureDependencies()
	insights, err := handler.coachService.Insights(c.Params("couple_code"))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build insights")
	}
	return c.JSON(fiber.Map{"insights": insights})
}
