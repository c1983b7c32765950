package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/bluearnk/bluearnk-api/internal/auth/service"
)

const (
	ctxUserID = "user_id"
	ctxEmail  = "email"
	ctxRole   = "role"
)

func (h *AuthHandler) bearerClaims(c *fiber.Ctx) (*service.AccessClaims, error) {
	authHeader := c.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
	}
	claims, err := h.tokenService.VerifyAccessToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "invalid access token")
	}
	return claims, nil
}

// RequireAuth verifies the bearer access token and stores the identity
// claims on the request context.
func (h *AuthHandler) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := h.bearerClaims(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}

		c.Locals(ctxUserID, claims.UserID)
		c.Locals(ctxEmail, claims.Email)
		c.Locals(ctxRole, claims.Role)
		return c.Next()
	}
}

// RequireRole gates a route group on the role claim embedded in the access
// token. Role edits only take effect once the old token expires, which the
// short access TTL keeps bounded.
func (h *AuthHandler) RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := h.bearerClaims(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}

		c.Locals(ctxUserID, claims.UserID)
		c.Locals(ctxEmail, claims.Email)
		c.Locals(ctxRole, claims.Role)

		for _, allowed := range roles {
			if claims.Role == allowed {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "insufficient role"})
	}
}

// UserID returns the authenticated user's id stored by the middleware.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(ctxUserID).(string)
	return id
}

// Role returns the authenticated user's role stored by the middleware.
func Role(c *fiber.Ctx) string {
	role, _ := c.Locals(ctxRole).(string)
	return role
}
