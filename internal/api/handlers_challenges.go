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

type createChallengeRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

func (handler *Handler) ChallengeSuggestions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"challenges":     services.SpicyChallenges,
		"positions":      services.PositionSuggestions,
		"quiz_questions": services.CompatibilityQuestions,
	})
}

func (handler *Handler) PositionCatalog(c *fiber.Ctx) error {
	return c.JSON(services.PositionSuggestions)
}

func (handler *Handler) RandomSuggestion(c *fiber.Ctx) error {
	return c.JSON(services.PickRandomSuggestion(handler.rng))
}

func (handler *Handler) RollLoveDice(c *fiber.Ctx) error {
	return c.JSON(services.RollLoveDice(handler.rng))
}

func (handler *Handler) CreateChallenge(c *fiber.Ctx) error {
	var request createChallengeRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	title := strings.TrimSpace(request.Title)
	if title == "" {
		return apiError(c, fiber.StatusBadRequest, "title is required")
	}

	handler.ensureDependencies()
	actor := currentUser(c)
	challenge := models.Challenge{
		ID:          uuid.NewString(),
		CoupleCode:  actor.CoupleCode,
		Title:       title,
		Description: strings.TrimSpace(request.Description),
		Category:    strings.TrimSpace(request.Category),
		CreatedAt:   time.Now(),
	}
	if err := handler.repositories.Challenges.Create(&challenge); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save challenge")
	}
	return c.Status(fiber.StatusCreated).JSON(challenge)
}

func (handler *Handler) ListChallenges(c *fiber.Ctx) error {
	handler.ensureDependencies()
	challenges, err := handler.repositories.Challenges.ListByCouple(c.Params("couple_code"))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load challenges")
	}
	return c.JSON(challenges)
}

func (handler *Handler) CompleteChallenge(c *fiber.Ctx) error {
	handler.ensureDependencies()
	actor := currentUser(c)
	if err := handler.repositories.Challenges.MarkCompleted(actor.CoupleCode, c.Params("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "Challenge not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to complete challenge")
	}
	return c.JSON(fiber.Map{"message": "Challenge completed"})
}

func (handler *Handler) WeeklyChallenge(c *fiber.Ctx) error {
	handler.ensureDependencies()
	challenge, err := handler.challengeService.WeeklyChallenge(c.Params("couple_code"), time.Now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load weekly challenge")
	}
	return c.JSON(challenge)
}

func (handler *Handler) CompleteWeeklyChallenge(c *fiber.Ctx) error {
	handler.ensureDependencies()
	if err := handler.challengeService.CompleteWeekly(c.Params("couple_code"), time.Now()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "Weekly challenge not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to complete weekly challenge")
	}
	return c.JSON(fiber.Map{"message": "Weekly challenge completed"})
}
