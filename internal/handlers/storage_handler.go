package handlers

import (
	"Attic/internal/apperrors"
	"Attic/internal/services"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type StorageHandler struct {
	service services.StorageService
}

func NewStorageHandler(service services.StorageService) *StorageHandler {
	return &StorageHandler{service: service}
}

func (h *StorageHandler) RegisterBox(c *fiber.Ctx) error {
	var payload map[string]interface{}
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	box, err := h.service.RegisterBox(payload)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(http.StatusCreated).JSON(box)
}

func (h *StorageHandler) GetBox(c *fiber.Ctx) error {
	box, err := h.service.GetBox(c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(box)
}

func (h *StorageHandler) UpdateBox(c *fiber.Ctx) error {
	var payload map[string]interface{}
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	box, err := h.service.UpdateBox(c.Params("id"), payload)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(box)
}

func (h *StorageHandler) AddBoxItems(c *fiber.Ctx) error {
	var req struct {
		Items []interface{} `json:"items"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if len(req.Items) == 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "items is required"})
	}
	box, err := h.service.AddBoxItems(c.Params("id"), req.Items)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(box)
}

func (h *StorageHandler) RemoveBoxItems(c *fiber.Ctx) error {
	var req struct {
		Items []string `json:"items"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if len(req.Items) == 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "items is required"})
	}
	box, err := h.service.RemoveBoxItems(c.Params("id"), req.Items)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(box)
}

func (h *StorageHandler) GetItem(c *fiber.Ctx) error {
	item, err := h.service.GetItem(c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(item)
}

func (h *StorageHandler) UpdateItem(c *fiber.Ctx) error {
	var payload map[string]interface{}
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	item, err := h.service.UpdateItem(c.Params("id"), payload)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(item)
}

func (h *StorageHandler) Search(c *fiber.Ctx) error {
	term := c.Query("term")
	if term == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "term is required"})
	}
	result, err := h.service.Search(term)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(result)
}

func errorResponse(c *fiber.Ctx, err error) error {
	switch apperrors.KindOf(err) {
	case apperrors.KindValidation:
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case apperrors.KindNotFound:
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "unknown server issue"})
	}
}
