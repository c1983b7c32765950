package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/bluearnk/bluearnk-api/internal/errors"
	"github.com/bluearnk/bluearnk-api/internal/queue"
	"github.com/bluearnk/bluearnk-api/internal/request/domain"
	"github.com/bluearnk/bluearnk-api/internal/request/dto"
	"github.com/bluearnk/bluearnk-api/pkg/constant"
)

//go:generate mockgen -source=request_service.go -destination=../../mocks/mock_event_publisher.go -package=mocks

// RequestEventPublisher signals status transitions to interested consumers.
// Delivery is best effort; failures are logged and never surface to callers.
type RequestEventPublisher interface {
	PublishRequestEvent(ctx context.Context, event queue.RequestEvent) error
}

type RequestService struct {
	requests domain.RequestRepository
	events   RequestEventPublisher
	log      *slog.Logger
}

func NewRequestService(requests domain.RequestRepository, events RequestEventPublisher, log *slog.Logger) *RequestService {
	if log == nil {
		log = slog.Default()
	}
	return &RequestService{requests: requests, events: events, log: log}
}

func (s *RequestService) CreateRequest(ctx context.Context, clientID string, input dto.CreateRequestInput) (*dto.RequestOutput, error) {
	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !domain.ValidPriority(priority) {
		return nil, apperrors.ErrInvalidStatus
	}

	now := time.Now()
	req := &domain.ServiceRequest{
		ID:          uuid.NewString(),
		ClientID:    clientID,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Priority:    priority,
		Status:      domain.StatusOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.requests.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to create service request: %w", err)
	}
	out := dto.NewRequestOutput(req)
	return &out, nil
}

// ListRequests scopes results by role: clients only ever see their own
// requests, staff and admins see everything.
func (s *RequestService) ListRequests(ctx context.Context, userID, role string) ([]dto.RequestOutput, error) {
	var (
		requests []domain.ServiceRequest
		err      error
	)
	if role == constant.RoleClient {
		requests, err = s.requests.ListByClientID(ctx, userID)
	} else {
		requests, err = s.requests.ListAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list service requests: %w", err)
	}

	out := make([]dto.RequestOutput, 0, len(requests))
	for i := range requests {
		out = append(out, dto.NewRequestOutput(&requests[i]))
	}
	return out, nil
}

func (s *RequestService) GetRequest(ctx context.Context, id, userID, role string) (*dto.RequestOutput, error) {
	req, err := s.loadVisible(ctx, id, userID, role)
	if err != nil {
		return nil, err
	}
	out := dto.NewRequestOutput(req)
	return &out, nil
}

func (s *RequestService) UpdateRequest(ctx context.Context, id string, input dto.UpdateRequestInput) (*dto.RequestOutput, error) {
	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, apperrors.ErrRequestNotFound
	}

	oldStatus := req.Status
	if input.Status != nil {
		if !domain.ValidStatus(*input.Status) {
			return nil, apperrors.ErrInvalidStatus
		}
		// Closed requests accept no further status edits.
		if oldStatus == domain.StatusClosed && *input.Status != domain.StatusClosed {
			return nil, apperrors.ErrInvalidStatus
		}
		req.Status = *input.Status
	}
	if input.Priority != nil {
		if !domain.ValidPriority(*input.Priority) {
			return nil, apperrors.ErrInvalidStatus
		}
		req.Priority = *input.Priority
	}
	if input.AssigneeID != nil {
		req.AssigneeID = input.AssigneeID
	}

	if err := s.requests.Update(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to update service request: %w", err)
	}

	if req.Status != oldStatus {
		s.notifyStatusChange(ctx, req, oldStatus)
	}
	out := dto.NewRequestOutput(req)
	return &out, nil
}

func (s *RequestService) AddComment(ctx context.Context, requestID, authorID, role string, input dto.CreateCommentInput) (*dto.CommentOutput, error) {
	req, err := s.loadVisible(ctx, requestID, authorID, role)
	if err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		ID:        uuid.NewString(),
		RequestID: req.ID,
		AuthorID:  authorID,
		Body:      input.Body,
		CreatedAt: time.Now(),
	}
	if err := s.requests.CreateComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	out := dto.NewCommentOutput(comment)
	return &out, nil
}

func (s *RequestService) ListComments(ctx context.Context, requestID, userID, role string) ([]dto.CommentOutput, error) {
	if _, err := s.loadVisible(ctx, requestID, userID, role); err != nil {
		return nil, err
	}

	comments, err := s.requests.ListComments(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	out := make([]dto.CommentOutput, 0, len(comments))
	for i := range comments {
		out = append(out, dto.NewCommentOutput(&comments[i]))
	}
	return out, nil
}

func (s *RequestService) ListNotifications(ctx context.Context, userID string) ([]dto.NotificationOutput, error) {
	notifications, err := s.requests.ListNotifications(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	out := make([]dto.NotificationOutput, 0, len(notifications))
	for i := range notifications {
		out = append(out, dto.NewNotificationOutput(&notifications[i]))
	}
	return out, nil
}

func (s *RequestService) MarkNotificationRead(ctx context.Context, id, userID string) error {
	return s.requests.MarkNotificationRead(ctx, id, userID)
}

func (s *RequestService) StatusReport(ctx context.Context) ([]dto.StatusCountOutput, error) {
	counts, err := s.requests.CountByStatusAndPriority(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build status report: %w", err)
	}
	out := make([]dto.StatusCountOutput, 0, len(counts))
	for _, c := range counts {
		out = append(out, dto.StatusCountOutput{Status: c.Status, Priority: c.Priority, Count: c.Count})
	}
	return out, nil
}

// loadVisible fetches a request and enforces ownership for clients.
func (s *RequestService) loadVisible(ctx context.Context, id, userID, role string) (*domain.ServiceRequest, error) {
	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, apperrors.ErrRequestNotFound
	}
	if role == constant.RoleClient && req.ClientID != userID {
		return nil, apperrors.ErrRequestNotFound
	}
	return req, nil
}

func (s *RequestService) notifyStatusChange(ctx context.Context, req *domain.ServiceRequest, oldStatus string) {
	notification := &domain.Notification{
		ID:        uuid.NewString(),
		UserID:    req.ClientID,
		Type:      queue.EventRequestStatusChanged,
		Message:   fmt.Sprintf("Your request %q moved from %s to %s", req.Title, oldStatus, req.Status),
		CreatedAt: time.Now(),
	}
	if err := s.requests.CreateNotification(ctx, notification); err != nil {
		s.log.Error("failed to create status notification", "request_id", req.ID, "error", err)
	}

	if s.events == nil {
		return
	}
	event := queue.RequestEvent{
		Type:       queue.EventRequestStatusChanged,
		RequestID:  req.ID,
		ClientID:   req.ClientID,
		OldStatus:  oldStatus,
		NewStatus:  req.Status,
		OccurredAt: time.Now(),
	}
	if err := s.events.PublishRequestEvent(ctx, event); err != nil {
		s.log.Error("failed to publish request event", "request_id", req.ID, "error", err)
	}
}
