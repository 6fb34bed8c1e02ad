package purchase

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
	app.Get("/api/v1/purchases/:personId", h.getHistory)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	// dev-only endpoint to replace the purchase snapshot
	app.Post("/dev/reset-purchases", h.resetPurchases)
}

func (h *Handler) getHistory(c *fiber.Ctx) error {
	personID, err := strconv.Atoi(c.Params("personId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("invalid personId")
	}
	return c.JSON(h.service.HistoryFor(personID))
}

func (h *Handler) resetPurchases(c *fiber.Ctx) error {
	var records []Record
	if err := c.BodyParser(&records); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := h.service.ResetPurchases(records); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "purchases replaced", "count": len(records)})
}
