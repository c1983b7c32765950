package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/bluearnk/bluearnk-api/internal/auth/dto"
	"github.com/bluearnk/bluearnk-api/internal/auth/service"
	autherror "github.com/bluearnk/bluearnk-api/internal/errors"
)

type AuthHandler struct {
	authService  *service.AuthService
	tokenService service.TokenGenerator
}

func NewAuthHandler(authService *service.AuthService, tokenService service.TokenGenerator) *AuthHandler {
	return &AuthHandler{authService: authService, tokenService: tokenService}
}

// statusForError maps service sentinels to HTTP status codes in one place so
// handlers never improvise their own mapping.
func statusForError(err error) int {
	switch {
	case errors.Is(err, autherror.ErrEmailAlreadyInUse):
		return fiber.StatusConflict
	case errors.Is(err, autherror.ErrInvalidCredentials),
		errors.Is(err, autherror.ErrRefreshTokenInvalid),
		errors.Is(err, autherror.ErrRefreshTokenNotFound),
		errors.Is(err, autherror.ErrRefreshTokenRevoked),
		errors.Is(err, autherror.ErrRefreshTokenExpired):
		return fiber.StatusUnauthorized
	case errors.Is(err, autherror.ErrAccountDisabled),
		errors.Is(err, autherror.ErrEmailNotVerified),
		errors.Is(err, autherror.ErrRoleDenied):
		return fiber.StatusForbidden
	case errors.Is(err, autherror.ErrInvalidResetToken),
		errors.Is(err, autherror.ErrInvalidVerificationCode),
		errors.Is(err, autherror.ErrInvalidVerificationToken),
		errors.Is(err, autherror.ErrEmailAlreadyVerified):
		return fiber.StatusBadRequest
	case errors.Is(err, autherror.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, autherror.ErrTooManyLoginAttempts):
		return fiber.StatusTooManyRequests
	default:
		return fiber.StatusInternalServerError
	}
}

func errorJSON(c *fiber.Ctx, err error) error {
	status := statusForError(err)
	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		msg = "internal server error"
	}
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var input dto.SignupInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	out, err := h.authService.Signup(c.Context(), input)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	// Capture metadata
	input.IPAddress = c.IP()
	input.UserAgent = string(c.Request().Header.UserAgent())

	tokenPair, err := h.authService.Login(c.Context(), input)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(tokenPair)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var input dto.LogoutInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	out, err := h.authService.Logout(c.Context(), input)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input dto.RefreshInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	tokens, err := h.authService.Refresh(c.Context(), input)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(tokens)
}

func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var input dto.ForgotPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	out, err := h.authService.ForgotPassword(c.Context(), input)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var input dto.ResetPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	out, err := h.authService.ResetPassword(c.Context(), input)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *AuthHandler) VerifyEmailOTP(c *fiber.Ctx) error {
	var input dto.VerifyOTPInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	out, err := h.authService.VerifyEmailOTP(c.Context(), input)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *AuthHandler) VerifyEmailToken(c *fiber.Ctx) error {
	input := dto.VerifyTokenInput{Token: c.Query("token")}
	if input.Token == "" {
		if err := c.BodyParser(&input); err != nil || input.Token == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "token required"})
		}
	}

	out, err := h.authService.VerifyEmailToken(c.Context(), input)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *AuthHandler) ResendVerification(c *fiber.Ctx) error {
	var input dto.ResendVerificationInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	out, err := h.authService.ResendVerification(c.Context(), input)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(out)
}
