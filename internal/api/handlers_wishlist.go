package api

import (
	"strings"
	"time"

	"github.com/coupletrack/bliss/internal/services"
	"github.com/gofiber/fiber/v2"
)

type toggleWishlistRequest struct {
	ItemID string `json:"item_id"`
	Title  string `json:"title"`
}

type saveDesiresRequest struct {
	Desires []string `json:"desires"`
}

func (handler *Handler) WishlistCatalog(c *fiber.Ctx) error {
	return c.JSON(services.WishlistCatalog)
}

func (handler *Handler) ToggleWishlistItem(c *fiber.Ctx) error {
	var request toggleWishlistRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	itemID := strings.TrimSpace(request.ItemID)
	if itemID == "" {
		return apiError(c, fiber.StatusBadRequest, "item_id is required")
	}
	title := strings.TrimSpace(request.Title)
	if title == "" {
		title = itemID
	}

	handler.ensureDependencies()
	actor := currentUser(c)
	result, err := handler.wishlistService.Toggle(actor.CoupleCode, actor.ID, itemID, title, time.Now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to toggle wishlist item")
	}
	return c.JSON(result)
}

func (handler *Handler) GetWishlist(c *fiber.Ctx) error {
	handler.ensureDependencies()
	view, err := handler.wishlistService.View(c.Params("couple_code"), c.Params("user_id"))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load wishlist")
	}
	return c.JSON(view)
}

func (handler *Handler) SaveDesires(c *fiber.Ctx) error {
	var request saveDesiresRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	handler.ensureDependencies()
	actor := currentUser(c)
	result, err := handler.desireService.Save(c.UserContext(), actor.CoupleCode, actor.ID, request.Desires, time.Now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save desires")
	}
	return c.JSON(result)
}

func (handler *Handler) GetDesires(c *fiber.Ctx) error {
	handler.ensureDependencies()
	view, err := handler.desireService.View(c.Params("couple_code"), c.Params("user_id"))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load desires")
	}
	return c.JSON(view)
}
