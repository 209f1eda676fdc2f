package handlers

import (
	"database/sql"
	"errors"

	"phoneshop/internal/domain"
	applog "phoneshop/internal/log"
	"phoneshop/internal/repos"
	"phoneshop/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProductHandler struct {
	Products *repos.ProductRepo
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.Products.List()
	if err != nil {
		applog.Error(c, "products.list.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch products"})
	}
	return c.JSON(products)
}

type productRequest struct {
	Name     string   `json:"name"`
	Price    *float64 `json:"price"`
	Cost     *float64 `json:"cost"`
	Quantity *int     `json:"quantity"`
	Image    *string  `json:"image"`
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to create product"})
	}
	name, ok := validate.Name(req.Name)
	if !ok || req.Price == nil || *req.Price < 0 || req.Quantity == nil || *req.Quantity < 0 {
		applog.Security(c, "products.create.invalid", nil)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to create product"})
	}

	p := domain.Product{
		ID:       uuid.NewString(),
		Name:     name,
		Price:    *req.Price,
		Quantity: *req.Quantity,
	}
	if req.Cost != nil && *req.Cost >= 0 {
		p.Cost = *req.Cost
	}
	if req.Image != nil {
		p.Image = *req.Image
	}
	if err := h.Products.Create(&p); err != nil {
		applog.Error(c, "products.create.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create product"})
	}
	applog.Audit(c, "products.create", map[string]any{"id": p.ID, "name": p.Name})
	return c.JSON(p)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}
	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to update product"})
	}
	patch := repos.ProductPatch{Price: req.Price, Cost: req.Cost, Quantity: req.Quantity, Image: req.Image}
	if req.Name != "" {
		if name, ok := validate.Name(req.Name); ok {
			patch.Name = &name
		}
	}
	if (patch.Price != nil && *patch.Price < 0) ||
		(patch.Cost != nil && *patch.Cost < 0) ||
		(patch.Quantity != nil && *patch.Quantity < 0) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to update product"})
	}

	if err := h.Products.Update(id, patch); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		applog.Error(c, "products.update.error", err, map[string]any{"id": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update product"})
	}

	p, err := h.Products.Get(id)
	if err != nil {
		applog.Error(c, "products.update.reload_error", err, map[string]any{"id": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update product"})
	}
	applog.Audit(c, "products.update", map[string]any{"id": id})
	return c.JSON(p)
}

// Delete is idempotent: deleting an already-missing product still succeeds.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to delete product"})
	}
	if err := h.Products.Delete(id); err != nil {
		applog.Error(c, "products.delete.error", err, map[string]any{"id": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete product"})
	}
	applog.Audit(c, "products.delete", map[string]any{"id": id})
	return c.JSON(fiber.Map{"success": true})
}
