package recipe

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/recipe", h.getRecipe)
}

func (h *Handler) getRecipe(c *fiber.Ctx) error {
	personID, err := strconv.Atoi(c.Query("personId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid or missing personId"})
	}

	text, err := h.service.ForPerson(c.Context(), personID)
	if err != nil {
		if errors.Is(err, ErrNotConfigured) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"message": "recipe generation not configured"})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"recipe": text})
}
