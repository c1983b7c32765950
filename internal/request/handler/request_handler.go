package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	authhandler "github.com/bluearnk/bluearnk-api/internal/auth/handler"
	apperrors "github.com/bluearnk/bluearnk-api/internal/errors"
	"github.com/bluearnk/bluearnk-api/internal/request/dto"
	"github.com/bluearnk/bluearnk-api/internal/request/service"
)

type RequestHandler struct {
	requestService *service.RequestService
}

func NewRequestHandler(requestService *service.RequestService) *RequestHandler {
	return &RequestHandler{requestService: requestService}
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrRequestNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, apperrors.ErrInvalidStatus):
		return fiber.StatusBadRequest
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

func (h *RequestHandler) CreateRequest(c *fiber.Ctx) error {
	var input dto.CreateRequestInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if input.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "title is required"})
	}

	out, err := h.requestService.CreateRequest(c.Context(), authhandler.UserID(c), input)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *RequestHandler) ListRequests(c *fiber.Ctx) error {
	out, err := h.requestService.ListRequests(c.Context(), authhandler.UserID(c), authhandler.Role(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

func (h *RequestHandler) GetRequest(c *fiber.Ctx) error {
	out, err := h.requestService.GetRequest(c.Context(), c.Params("id"), authhandler.UserID(c), authhandler.Role(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

func (h *RequestHandler) UpdateRequest(c *fiber.Ctx) error {
	var input dto.UpdateRequestInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	out, err := h.requestService.UpdateRequest(c.Context(), c.Params("id"), input)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

func (h *RequestHandler) AddComment(c *fiber.Ctx) error {
	var input dto.CreateCommentInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if input.Body == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "body is required"})
	}

	out, err := h.requestService.AddComment(c.Context(), c.Params("id"), authhandler.UserID(c), authhandler.Role(c), input)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *RequestHandler) ListComments(c *fiber.Ctx) error {
	out, err := h.requestService.ListComments(c.Context(), c.Params("id"), authhandler.UserID(c), authhandler.Role(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

func (h *RequestHandler) ListNotifications(c *fiber.Ctx) error {
	out, err := h.requestService.ListNotifications(c.Context(), authhandler.UserID(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

func (h *RequestHandler) MarkNotificationRead(c *fiber.Ctx) error {
	if err := h.requestService.MarkNotificationRead(c.Context(), c.Params("id"), authhandler.UserID(c)); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "notification marked as read"})
}

func (h *RequestHandler) StatusReport(c *fiber.Ctx) error {
	out, err := h.requestService.StatusReport(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}
