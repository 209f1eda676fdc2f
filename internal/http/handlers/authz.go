package handlers

import (
	"strings"

	applog "phoneshop/internal/log"
	"phoneshop/internal/services"

	"github.com/gofiber/fiber/v2"
)

const claimsKey = "claims"

// RequireAuth gates every protected route on a bearer token. A missing
// credential and an invalid one are distinct failures: 401 vs 403.
func RequireAuth(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			applog.Security(c, "auth.header.missing", nil)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Authorization header missing"})
		}
		token := ""
		if rest, found := strings.CutPrefix(header, "Bearer "); found {
			token = strings.TrimSpace(rest)
		}
		if token == "" {
			applog.Security(c, "auth.token.missing", nil)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Token missing"})
		}
		claims, err := auth.Verify(token)
		if err != nil {
			applog.Security(c, "auth.token.invalid", nil)
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Invalid or expired token"})
		}
		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

// CurrentClaims returns the verified identity attached by RequireAuth.
func CurrentClaims(c *fiber.Ctx) *services.Claims {
	claims, _ := c.Locals(claimsKey).(*services.Claims)
	return claims
}
