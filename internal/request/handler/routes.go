package handler

import (
	"github.com/gofiber/fiber/v2"

	authhandler "github.com/bluearnk/bluearnk-api/internal/auth/handler"
	"github.com/bluearnk/bluearnk-api/pkg/constant"
)

func RegisterRoutes(app *fiber.App, h *RequestHandler, auth *authhandler.AuthHandler) {
	api := app.Group("/api/v1", auth.RequireAuth())

	api.Post("/requests", h.CreateRequest)
	api.Get("/requests", h.ListRequests)
	api.Get("/requests/:id", h.GetRequest)
	api.Post("/requests/:id/comments", h.AddComment)
	api.Get("/requests/:id/comments", h.ListComments)

	api.Get("/notifications", h.ListNotifications)
	api.Patch("/notifications/:id/read", h.MarkNotificationRead)

	// Staff workflow endpoints
	staff := app.Group("/api/v1", auth.RequireRole(constant.RoleAdmin, constant.RoleStaff))
	staff.Patch("/requests/:id", h.UpdateRequest)
	staff.Get("/reports/requests", h.StatusReport)
}
