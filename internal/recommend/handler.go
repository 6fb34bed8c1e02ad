package recommend

import (
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
	app.Get("/api/v1/recommendations", h.getRecommendations)
}

func (h *Handler) getRecommendations(c *fiber.Ctx) error {
	personID, err := strconv.Atoi(c.Query("personId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid or missing personId"})
	}

	topN := DefaultTopN
	if raw := c.Query("topN"); raw != "" {
		topN, err = strconv.Atoi(raw)
		if err != nil || topN <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid topN"})
		}
	}

	return c.JSON(h.service.Recommendations(personID, topN))
}
