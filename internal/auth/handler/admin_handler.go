package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bluearnk/bluearnk-api/internal/auth/dto"
)

func (h *AuthHandler) GetAllUsers(c *fiber.Ctx) error {
	users, err := h.authService.ListUsers(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(users)
}

func (h *AuthHandler) UpdateUserRole(c *fiber.Ctx) error {
	var input dto.UpdateRoleInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if err := h.authService.UpdateUserRole(c.Context(), c.Params("id"), input); err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "role updated"})
}

func (h *AuthHandler) UpdateUserStatus(c *fiber.Ctx) error {
	var input dto.UpdateStatusInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if err := h.authService.SetUserStatus(c.Context(), c.Params("id"), input); err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "status updated"})
}

func (h *AuthHandler) GetUserSessions(c *fiber.Ctx) error {
	sessions, err := h.authService.GetUserSessions(c.Context(), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(sessions)
}

func (h *AuthHandler) ForceLogout(c *fiber.Ctx) error {
	if err := h.authService.ForceLogout(c.Context(), c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "sessions revoked"})
}
