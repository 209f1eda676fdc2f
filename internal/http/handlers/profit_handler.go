package handlers

import (
	applog "phoneshop/internal/log"
	"phoneshop/internal/repos"
	"phoneshop/internal/services"
	"phoneshop/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ProfitHandler struct {
	Profits *repos.ProfitRepo
	Calc    *services.ProfitService
}

// List supports optional ?type= and ?date= filters (the dashboard asks for
// one period at a time).
func (h *ProfitHandler) List(c *fiber.Ctx) error {
	typ := c.Query("type")
	if typ != "" {
		if _, ok := validate.ProfitType(typ); !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to fetch profits"})
		}
	}
	date := c.Query("date")
	profits, err := h.Profits.List(typ, date)
	if err != nil {
		applog.Error(c, "profits.list.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch profits"})
	}
	return c.JSON(profits)
}

type profitRequest struct {
	Type   string   `json:"type"`
	Date   string   `json:"date"`
	Profit *float64 `json:"profit"`
}

// Upsert writes a profit row keyed by (type, date); a later write for the
// same key overwrites the earlier one.
func (h *ProfitHandler) Upsert(c *fiber.Ctx) error {
	var req profitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to create/update profit"})
	}
	typ, ok := validate.ProfitType(req.Type)
	if !ok || req.Profit == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to create/update profit"})
	}
	date, ok := validate.PeriodDate(req.Date)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to create/update profit"})
	}

	if err := h.Profits.Upsert(typ, date, *req.Profit); err != nil {
		applog.Error(c, "profits.upsert.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create/update profit"})
	}
	rows, err := h.Profits.List(typ, date)
	if err != nil || len(rows) == 0 {
		applog.Error(c, "profits.upsert.reload_error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create/update profit"})
	}
	applog.Audit(c, "profits.upsert", map[string]any{"type": typ, "date": date})
	return c.JSON(rows[0])
}

func (h *ProfitHandler) Recalculate(c *fiber.Ctx) error {
	rows, err := h.Calc.Recalculate()
	if err != nil {
		applog.Error(c, "profits.recalculate.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to recalculate profits"})
	}
	applog.Audit(c, "profits.recalculate", map[string]any{"rows": rows})
	return c.JSON(fiber.Map{"success": true, "message": "Profits recalculated"})
}
