package handlers

import (
	"errors"

	applog "phoneshop/internal/log"
	"phoneshop/internal/services"
	"phoneshop/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Auth *services.AuthService
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req credentials
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Username and password required"})
	}
	username, ok := validate.Username(req.Username)
	if !ok || req.Password == "" {
		applog.Security(c, "auth.register.fail", map[string]any{"reason": "missing_field"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Username and password required"})
	}

	err := h.Auth.Register(username, req.Password)
	switch {
	case err == nil:
	case errors.Is(err, services.ErrUserExists):
		applog.Security(c, "auth.register.fail", map[string]any{"username": username, "reason": "duplicate"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Username already exists"})
	case errors.Is(err, services.ErrMissingField):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Username and password required"})
	default:
		applog.Error(c, "auth.register.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	applog.Audit(c, "auth.register.success", map[string]any{"username": username})
	return c.JSON(fiber.Map{"message": "User created"})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req credentials
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Username and password required"})
	}
	if req.Username == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Username and password required"})
	}

	token, err := h.Auth.Login(req.Username, req.Password)
	switch {
	case err == nil:
	case errors.Is(err, services.ErrBadCreds):
		applog.Security(c, "auth.login.fail", map[string]any{"username": req.Username})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid username or password"})
	default:
		applog.Error(c, "auth.login.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	applog.Audit(c, "auth.login.success", map[string]any{"username": req.Username})
	return c.JSON(fiber.Map{"token": token, "username": req.Username})
}

// Me projects the identity attached by RequireAuth.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	claims := CurrentClaims(c)
	if claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}
	return c.JSON(fiber.Map{"userId": claims.UserID, "username": claims.Username})
}
