package handlers

import (
	"errors"

	applog "phoneshop/internal/log"
	"phoneshop/internal/services"

	"github.com/gofiber/fiber/v2"
)

type BillHandler struct {
	Billing *services.BillingService
}

func (h *BillHandler) List(c *fiber.Ctx) error {
	bills, err := h.Billing.List()
	if err != nil {
		applog.Error(c, "bills.list.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch bills"})
	}
	return c.JSON(bills)
}

func (h *BillHandler) Create(c *fiber.Ctx) error {
	var in services.BillInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to create bill"})
	}

	bill, err := h.Billing.Create(in)
	switch {
	case err == nil:
	case errors.Is(err, services.ErrMissingCustomer),
		errors.Is(err, services.ErrBadBillType),
		errors.Is(err, services.ErrNoValidItems):
		applog.Security(c, "bills.create.invalid", map[string]any{"reason": err.Error()})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		applog.Error(c, "bills.create.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create bill"})
	}

	applog.Audit(c, "bills.create", map[string]any{"id": bill.ID, "amount": bill.Amount, "items": len(bill.Items)})
	return c.JSON(bill)
}
