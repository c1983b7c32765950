package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/bluearnk/bluearnk-api/internal/request/domain"
)

type PgxIface interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db PgxIface
}

func NewPostgresRepository(db PgxIface) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const requestColumns = `id, client_id, assignee_id, title, description, category, priority, status, created_at, updated_at`

func (r *PostgresRepository) Create(ctx context.Context, req *domain.ServiceRequest) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO service_requests (id, client_id, assignee_id, title, description, category, priority, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, req.ID, req.ClientID, req.AssigneeID, req.Title, req.Description,
		req.Category, req.Priority, req.Status, req.CreatedAt, req.UpdatedAt)
	return err
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.ServiceRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM service_requests WHERE id = $1 LIMIT 1`, requestColumns)
	req, err := scanRequest(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get service request: %w", err)
	}
	return req, nil
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]domain.ServiceRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM service_requests ORDER BY created_at DESC`, requestColumns)
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRequests(rows)
}

func (r *PostgresRepository) ListByClientID(ctx context.Context, clientID string) ([]domain.ServiceRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM service_requests WHERE client_id = $1 ORDER BY created_at DESC`, requestColumns)
	rows, err := r.db.Query(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRequests(rows)
}

func (r *PostgresRepository) Update(ctx context.Context, req *domain.ServiceRequest) error {
	_, err := r.db.Exec(ctx, `
		UPDATE service_requests
		SET assignee_id = $1, priority = $2, status = $3, updated_at = now()
		WHERE id = $4
	`, req.AssigneeID, req.Priority, req.Status, req.ID)
	return err
}

func (r *PostgresRepository) CreateComment(ctx context.Context, c *domain.Comment) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO request_comments (id, request_id, author_id, body, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, c.ID, c.RequestID, c.AuthorID, c.Body, c.CreatedAt)
	return err
}

func (r *PostgresRepository) ListComments(ctx context.Context, requestID string) ([]domain.Comment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, request_id, author_id, body, created_at
		FROM request_comments
		WHERE request_id = $1
		ORDER BY created_at ASC
	`, requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.RequestID, &c.AuthorID, &c.Body, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *PostgresRepository) CreateNotification(ctx context.Context, n *domain.Notification) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO notifications (id, user_id, type, message, read_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, n.ID, n.UserID, n.Type, n.Message, n.ReadAt, n.CreatedAt)
	return err
}

func (r *PostgresRepository) ListNotifications(ctx context.Context, userID string) ([]domain.Notification, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, type, message, read_at, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Message, &n.ReadAt, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (r *PostgresRepository) MarkNotificationRead(ctx context.Context, id, userID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE notifications SET read_at = now()
		WHERE id = $1 AND user_id = $2 AND read_at IS NULL
	`, id, userID)
	return err
}

func (r *PostgresRepository) CountByStatusAndPriority(ctx context.Context) ([]domain.StatusCount, error) {
	rows, err := r.db.Query(ctx, `
		SELECT status, priority, COUNT(*)
		FROM service_requests
		GROUP BY status, priority
		ORDER BY status, priority
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []domain.StatusCount
	for rows.Next() {
		var c domain.StatusCount
		if err := rows.Scan(&c.Status, &c.Priority, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func scanRequest(row pgx.Row) (*domain.ServiceRequest, error) {
	var req domain.ServiceRequest
	err := row.Scan(&req.ID, &req.ClientID, &req.AssigneeID, &req.Title, &req.Description,
		&req.Category, &req.Priority, &req.Status, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func collectRequests(rows pgx.Rows) ([]domain.ServiceRequest, error) {
	var requests []domain.ServiceRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *req)
	}
	return requests, rows.Err()
}
