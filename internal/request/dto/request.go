package dto

import (
	"time"

	"github.com/bluearnk/bluearnk-api/internal/request/domain"
)

type CreateRequestInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
}

type UpdateRequestInput struct {
	Status     *string `json:"status"`
	AssigneeID *string `json:"assignee_id"`
	Priority   *string `json:"priority"`
}

type RequestOutput struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	AssigneeID  *string   `json:"assignee_id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewRequestOutput(r *domain.ServiceRequest) RequestOutput {
	return RequestOutput{
		ID:          r.ID,
		ClientID:    r.ClientID,
		AssigneeID:  r.AssigneeID,
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Priority:    r.Priority,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type CreateCommentInput struct {
	Body string `json:"body" binding:"required"`
}

type CommentOutput struct {
	ID        string    `json:"id"`
	RequestID string    `json:"request_id"`
	AuthorID  string    `json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

func NewCommentOutput(c *domain.Comment) CommentOutput {
	return CommentOutput{
		ID:        c.ID,
		RequestID: c.RequestID,
		AuthorID:  c.AuthorID,
		Body:      c.Body,
		CreatedAt: c.CreatedAt,
	}
}

type NotificationOutput struct {
	ID        string     `json:"id"`
	Type      string     `json:"type"`
	Message   string     `json:"message"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func NewNotificationOutput(n *domain.Notification) NotificationOutput {
	return NotificationOutput{
		ID:        n.ID,
		Type:      n.Type,
		Message:   n.Message,
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
	}
}

type StatusCountOutput struct {
	Status   string `json:"status"`
	Priority string `json:"priority"`
	Count    int    `json:"count"`
}
