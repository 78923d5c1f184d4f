package handlers

import (
	"Attic/internal/models"
	"Attic/internal/services"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type ShoppingHandler struct {
	service services.ShoppingService
}

func NewShoppingHandler(service services.ShoppingService) *ShoppingHandler {
	return &ShoppingHandler{service: service}
}

func (h *ShoppingHandler) ListEntries(c *fiber.Ctx) error {
	entries, err := h.service.List()
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"items": entries})
}

func (h *ShoppingHandler) CreateEntries(c *fiber.Ctx) error {
	var req struct {
		Items []models.ShoppingEntry `json:"items"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if len(req.Items) == 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "items is required"})
	}
	for _, entry := range req.Items {
		if entry.Name == "" {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
		}
	}
	entries, err := h.service.Add(req.Items)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"items": entries})
}

// UpdateEntry flips the purchased state of one entry depending on which
// query flag is set.
func (h *ShoppingHandler) UpdateEntry(c *fiber.Ctx) error {
	id := c.Params("id")
	var err error
	switch {
	case c.Query("purchased") != "":
		err = h.service.Purchased(id)
	case c.Query("unpurchased") != "":
		err = h.service.Unpurchased(id)
	default:
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "purchased or unpurchased is required"})
	}
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{})
}

func (h *ShoppingHandler) DeleteEntry(c *fiber.Ctx) error {
	if err := h.service.Deleted(c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{})
}
