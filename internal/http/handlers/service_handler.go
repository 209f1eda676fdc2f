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

type ServiceHandler struct {
	Services *repos.ServiceRepo
}

func (h *ServiceHandler) List(c *fiber.Ctx) error {
	tickets, err := h.Services.List()
	if err != nil {
		applog.Error(c, "services.list.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch services"})
	}
	return c.JSON(tickets)
}

func (h *ServiceHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
	}
	ticket, err := h.Services.Get(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
		}
		applog.Error(c, "services.get.error", err, map[string]any{"id": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch service"})
	}
	return c.JSON(ticket)
}

func (h *ServiceHandler) Create(c *fiber.Ctx) error {
	var req entryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to create service"})
	}
	name, ok := validate.Name(req.Name)
	if !ok || req.Amount == nil {
		applog.Security(c, "services.create.invalid", nil)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to create service"})
	}
	date, ok := validate.Date(req.Date)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to create service"})
	}

	ticket := domain.ServiceTicket{ID: uuid.NewString(), Name: name, Amount: *req.Amount, Date: date}
	if err := h.Services.Create(&ticket); err != nil {
		applog.Error(c, "services.create.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create service"})
	}
	applog.Audit(c, "services.create", map[string]any{"id": ticket.ID, "amount": ticket.Amount})
	return c.JSON(ticket)
}

func (h *ServiceHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
	}
	var req entryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to update service"})
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
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to update service"})
		}
		patch.Date = &date
	}

	if err := h.Services.Update(id, patch); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
		}
		applog.Error(c, "services.update.error", err, map[string]any{"id": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update service"})
	}

	ticket, err := h.Services.Get(id)
	if err != nil {
		applog.Error(c, "services.update.reload_error", err, map[string]any{"id": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update service"})
	}
	applog.Audit(c, "services.update", map[string]any{"id": id})
	return c.JSON(ticket)
}

func (h *ServiceHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to delete service"})
	}
	if err := h.Services.Delete(id); err != nil {
		applog.Error(c, "services.delete.error", err, map[string]any{"id": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete service"})
	}
	applog.Audit(c, "services.delete", map[string]any{"id": id})
	return c.JSON(fiber.Map{"success": true})
}
