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

type InvestmentHandler struct {
	Investments *repos.InvestmentRepo
}

type entryRequest struct {
	Name   string   `json:"name"`
	Amount *float64 `json:"amount"`
	Date   string   `json:"date"`
}

func (h *InvestmentHandler) List(c *fiber.Ctx) error {
	investments, err := h.Investments.List()
	if err != nil {
		applog.Error(c, "investments.list.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch investments"})
	}
	return c.JSON(investments)
}

func (h *InvestmentHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Investment not found"})
	}
	inv, err := h.Investments.Get(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Investment not found"})
		}
		applog.Error(c, "investments.get.error", err, map[string]any{"id": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch investment"})
	}
	return c.JSON(inv)
}

func (h *InvestmentHandler) Create(c *fiber.Ctx) error {
	var req entryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to create investment"})
	}
	name, ok := validate.Name(req.Name)
	if !ok || req.Amount == nil {
		applog.Security(c, "investments.create.invalid", nil)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to create investment"})
	}
	date, ok := validate.Date(req.Date)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to create investment"})
	}

	inv := domain.Investment{ID: uuid.NewString(), Name: name, Amount: *req.Amount, Date: date}
	if err := h.Investments.Create(&inv); err != nil {
		applog.Error(c, "investments.create.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create investment"})
	}
	applog.Audit(c, "investments.create", map[string]any{"id": inv.ID, "amount": inv.Amount})
	return c.JSON(inv)
}

func (h *InvestmentHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Investment not found"})
	}
	var req entryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to update investment"})
	}
	patch := repos.EntryPatch{Amount: req.Amount}
	if req.Name != "" {
		if name, ok := validate.Name(req.Name); ok {
			patch.Name = &name
		}
	}
	if req.Date != "" {
		date, ok := validate.Date(req.Date)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to update investment"})
		}
		patch.Date = &date
	}

	if err := h.Investments.Update(id, patch); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Investment not found"})
		}
		applog.Error(c, "investments.update.error", err, map[string]any{"id": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update investment"})
	}

	inv, err := h.Investments.Get(id)
	if err != nil {
		applog.Error(c, "investments.update.reload_error", err, map[string]any{"id": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update investment"})
	}
	applog.Audit(c, "investments.update", map[string]any{"id": id})
	return c.JSON(inv)
}

func (h *InvestmentHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to delete investment"})
	}
	if err := h.Investments.Delete(id); err != nil {
		applog.Error(c, "investments.delete.error", err, map[string]any{"id": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete investment"})
	}
	applog.Audit(c, "investments.delete", map[string]any{"id": id})
	return c.JSON(fiber.Map{"success": true})
}
