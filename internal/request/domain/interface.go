package domain

//go:generate mockgen -destination=../../mocks/mock_request_repository.go -package=mocks github.com/bluearnk/bluearnk-api/internal/request/domain RequestRepository

import "context"

type RequestRepository interface {
	Create(ctx context.Context, r *ServiceRequest) error
	GetByID(ctx context.Context, id string) (*ServiceRequest, error)
	ListAll(ctx context.Context) ([]ServiceRequest, error)
	ListByClientID(ctx context.Context, clientID string) ([]ServiceRequest, error)
	Update(ctx context.Context, r *ServiceRequest) error

	CreateComment(ctx context.Context, c *Comment) error
	ListComments(ctx context.Context, requestID string) ([]Comment, error)

	CreateNotification(ctx context.Context, n *Notification) error
	ListNotifications(ctx context.Context, userID string) ([]Notification, error)
	MarkNotificationRead(ctx context.Context, id, userID string) error

	CountByStatusAndPriority(ctx context.Context) ([]StatusCount, error)
}
