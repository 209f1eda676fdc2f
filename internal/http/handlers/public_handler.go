package handlers

import (
	"phoneshop/internal/domain"
	applog "phoneshop/internal/log"
	"phoneshop/internal/repos"

	"github.com/gofiber/fiber/v2"
)

// PublicHandler serves the unauthenticated storefront surface: the rendered
// listing page and the raw product feed.
type PublicHandler struct {
	Products *repos.ProductRepo
}

// Page renders the shop window; only in-stock products are shown there.
func (h *PublicHandler) Page(c *fiber.Ctx) error {
	products, err := h.Products.List()
	if err != nil {
		applog.Error(c, "public.page.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
	}
	inStock := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.Quantity > 0 {
			inStock = append(inStock, p)
		}
	}
	return c.Render("products", fiber.Map{"Products": inStock})
}

// List returns every product unfiltered; callers filter quantity > 0 if they
// care.
func (h *PublicHandler) List(c *fiber.Ctx) error {
	products, err := h.Products.List()
	if err != nil {
		applog.Error(c, "public.products.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch products"})
	}
	return c.JSON(products)
}
