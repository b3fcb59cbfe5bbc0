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

const loveNotesPageSize = 50

type sendLoveNoteRequest struct {
	Message  string `json:"message"`
	Category string `json:"category"`
}

func (handler *Handler) LoveNoteTemplates(c *fiber.Ctx) error {
	return c.JSON(services.LoveNoteTemplates)
}

func (handler *Handler) SendLoveNote(c *fiber.Ctx) error {
	var request sendLoveNoteRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	message := strings.TrimSpace(request.Message)
	if message == "" {
		return apiError(c, fiber.StatusBadRequest, "message is required")
	}

	handler.ensureDependencies()
	actor := currentUser(c)
	note := models.LoveNote{
		ID:         uuid.NewString(),
		CoupleCode: actor.CoupleCode,
		SenderID:   actor.ID,
		SenderName: actor.Name,
		Message:    message,
		Category:   strings.TrimSpace(request.Category),
		CreatedAt:  time.Now(),
	}
	if err := handler.repositories.LoveNotes.Create(&note); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to send note")
	}
	return c.Status(fiber.StatusCreated).JSON(note)
}

func (handler *Handler) ListLoveNotes(c *fiber.Ctx) error {
	handler.ensureDependencies()
	notes, err := handler.repositories.LoveNotes.ListReceived(c.Params("couple_code"), c.Params("user_id"), loveNotesPageSize)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load notes")
	}
	return c.JSON(notes)
}

func (handler *Handler) UnreadLoveNotes(c *fiber.Ctx) error {
	handler.ensureDependencies()
	notes, err := handler.repositories.LoveNotes.ListUnread(c.Params("couple_code"), c.Params("user_id"), loveNotesPageSize)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load notes")
	}
	return c.JSON(fiber.Map{"count": len(notes), "notes": notes})
}

func (handler *Handler) MarkLoveNoteRead(c *fiber.Ctx) error {
	handler.ensureDependencies()
	if err := handler.repositories.LoveNotes.MarkRead(c.Params("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "Note not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to mark note read")
	}
	return c.JSON(fiber.Map{"message": "Note marked as read"})
}
