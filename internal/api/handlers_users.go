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

type registerUserRequest struct {
	Name   string `json:"name"`
	Gender string `json:"gender"`
}

type joinCoupleRequest struct {
	CoupleCode string `json:"couple_code"`
}

type pushTokenRequest struct {
	PushToken string `json:"push_token"`
}

func (handler *Handler) RegisterUser(c *fiber.Ctx) error {
	var request registerUserRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	name := strings.TrimSpace(request.Name)
	if name == "" {
		return apiError(c, fiber.StatusBadRequest, "name is required")
	}
	gender := strings.ToLower(strings.TrimSpace(request.Gender))
	if gender != models.GenderMale && gender != models.GenderFemale {
		return apiError(c, fiber.StatusBadRequest, "gender must be male or female")
	}

	handler.ensureDependencies()
	user, err := handler.pairingService.Register(name, gender, time.Now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create user")
	}

	token, err := handler.buildToken(&user, deviceTokenTTL)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to issue token")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": user, "token": token})
}

func (handler *Handler) GetUser(c *fiber.Ctx) error {
	handler.ensureDependencies()
	user, err := handler.repositories.Users.FindByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "User not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load user")
	}
	return c.JSON(user)
}

func (handler *Handler) JoinCouple(c *fiber.Ctx) error {
	var request joinCoupleRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	coupleCode := strings.ToUpper(strings.TrimSpace(request.CoupleCode))
	if coupleCode == "" {
		return apiError(c, fiber.StatusBadRequest, "couple_code is required")
	}

	handler.ensureDependencies()
	actor := currentUser(c)
	if _, err := handler.pairingService.Join(actor.ID, coupleCode); err != nil {
		switch {
		case errors.Is(err, services.ErrCoupleCodeNotFound):
			return apiError(c, fiber.StatusNotFound, "Codice coppia non trovato")
		case errors.Is(err, services.ErrSelfPairing):
			return apiError(c, fiber.StatusBadRequest, "Non puoi collegarti a te stesso")
		case errors.Is(err, services.ErrCoupleOccupied):
			return apiError(c, fiber.StatusConflict, "Questa coppia è già al completo")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to join couple")
		}
	}

	return c.JSON(fiber.Map{"message": "Coppia collegata!", "couple_code": coupleCode})
}

func (handler *Handler) SavePushToken(c *fiber.Ctx) error {
	var request pushTokenRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	handler.ensureDependencies()
	actor := currentUser(c)
	if err := handler.repositories.Users.UpdatePushToken(actor.ID, strings.TrimSpace(request.PushToken)); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save push token")
	}
	return c.JSON(fiber.Map{"message": "Push token saved"})
}
