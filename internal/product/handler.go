package product

import (
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products", h.getProducts)
	app.Get("/api/v1/product/:name", h.getProduct)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	// dev-only endpoint to replace the catalog snapshot
	app.Post("/dev/reset-products", h.resetProducts)
}

func (h *Handler) getProducts(c *fiber.Ctx) error {
	if cat := c.Query("category"); cat != "" {
		return c.JSON(h.service.ListByCategory(cat))
	}
	return c.JSON(h.service.List())
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	p, err := h.service.GetByName(c.Params("name"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Product not found")
	}
	return c.JSON(p)
}

// resetProducts replaces the catalog with the posted list. The route is
// registered behind the JWT middleware, so only the admin can call it.
func (h *Handler) resetProducts(c *fiber.Ctx) error {
	var products []Product
	if err := c.BodyParser(&products); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := h.service.ResetProducts(products); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "products replaced", "count": len(products)})
}
