package handler

import (
	"github.com/gofiber/fiber/v2"

	authconstant "github.com/bluearnk/bluearnk-api/pkg/constant"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	app.Post("/api/v1/signup", h.Signup)
	app.Post("/api/v1/login", h.Login)
	app.Post("/api/v1/refresh", h.Refresh)
	app.Delete("/api/v1/session", h.Logout)
	app.Post("/api/v1/forgot-password", h.ForgotPassword)
	app.Post("/api/v1/reset-password", h.ResetPassword)
	app.Post("/api/v1/verify-otp", h.VerifyEmailOTP)
	app.Get("/api/v1/verify-email", h.VerifyEmailToken)
	app.Post("/api/v1/verify-email", h.VerifyEmailToken)
	app.Post("/api/v1/resend-verification", h.ResendVerification)

	// Admin-only endpoints
	admin := app.Group("/api/v1/admin", h.RequireRole(authconstant.RoleAdmin))
	admin.Get("/users", h.GetAllUsers)
	admin.Patch("/user/:id/role", h.UpdateUserRole)
	admin.Patch("/user/:id/status", h.UpdateUserStatus)
	admin.Get("/user/:id/sessions", h.GetUserSessions)
	admin.Delete("/user/:id/sessions", h.ForceLogout)
}
