package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluearnk/bluearnk-api/internal/request/domain"
	repo "github.com/bluearnk/bluearnk-api/internal/request/repository/postgres"
)

var requestColumns = []string{
	"id", "client_id", "assignee_id", "title", "description",
	"category", "priority", "status", "created_at", "updated_at",
}

func requestRow(id, clientID, status string) *pgxmock.Rows {
	return pgxmock.NewRows(requestColumns).
		AddRow(id, clientID, nil, "Broken export", "", "billing", "medium", status, time.Now(), time.Now())
}

func TestCreateRequest(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)

	req := &domain.ServiceRequest{
		ID:        "req-1",
		ClientID:  "client-1",
		Title:     "Broken export",
		Category:  "billing",
		Priority:  domain.PriorityMedium,
		Status:    domain.StatusOpen,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	mock.ExpectExec("INSERT INTO service_requests").
		WithArgs(req.ID, req.ClientID, req.AssigneeID, req.Title, req.Description,
			req.Category, req.Priority, req.Status, req.CreatedAt, req.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, r.Create(context.Background(), req))
}

func TestGetRequestByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, client_id, assignee_id").
			WithArgs("req-1").
			WillReturnRows(requestRow("req-1", "client-1", "open"))

		req, err := r.GetByID(ctx, "req-1")
		require.NoError(t, err)
		assert.Equal(t, "client-1", req.ClientID)
		assert.Nil(t, req.AssigneeID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, client_id, assignee_id").
			WithArgs("missing").
			WillReturnError(pgx.ErrNoRows)

		req, err := r.GetByID(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, req)
	})
}

func TestListByClientID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)

	mock.ExpectQuery("SELECT id, client_id, assignee_id").
		WithArgs("client-1").
		WillReturnRows(requestRow("req-1", "client-1", "open").
			AddRow("req-2", "client-1", nil, "Second", "", "", "high", "resolved", time.Now(), time.Now()))

	requests, err := r.ListByClientID(context.Background(), "client-1")
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, "req-2", requests[1].ID)
}

func TestUpdateRequest(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)

	assignee := "staff-1"
	req := &domain.ServiceRequest{
		ID:         "req-1",
		AssigneeID: &assignee,
		Priority:   domain.PriorityHigh,
		Status:     domain.StatusInProgress,
	}

	mock.ExpectExec("UPDATE service_requests").
		WithArgs(req.AssigneeID, req.Priority, req.Status, req.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, r.Update(context.Background(), req))
}

func TestComments(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	t.Run("create", func(t *testing.T) {
		c := &domain.Comment{
			ID:        "c-1",
			RequestID: "req-1",
			AuthorID:  "client-1",
			Body:      "any update?",
			CreatedAt: time.Now(),
		}

		mock.ExpectExec("INSERT INTO request_comments").
			WithArgs(c.ID, c.RequestID, c.AuthorID, c.Body, c.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		assert.NoError(t, r.CreateComment(ctx, c))
	})

	t.Run("list", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, request_id, author_id").
			WithArgs("req-1").
			WillReturnRows(pgxmock.NewRows([]string{"id", "request_id", "author_id", "body", "created_at"}).
				AddRow("c-1", "req-1", "client-1", "any update?", time.Now()))

		comments, err := r.ListComments(ctx, "req-1")
		require.NoError(t, err)
		require.Len(t, comments, 1)
		assert.Equal(t, "any update?", comments[0].Body)
	})
}

func TestNotifications(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	t.Run("create", func(t *testing.T) {
		n := &domain.Notification{
			ID:        "n-1",
			UserID:    "client-1",
			Type:      "request.status_changed",
			Message:   "moved",
			CreatedAt: time.Now(),
		}

		mock.ExpectExec("INSERT INTO notifications").
			WithArgs(n.ID, n.UserID, n.Type, n.Message, n.ReadAt, n.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		assert.NoError(t, r.CreateNotification(ctx, n))
	})

	t.Run("mark read scoped to owner", func(t *testing.T) {
		mock.ExpectExec("UPDATE notifications SET read_at").
			WithArgs("n-1", "client-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, r.MarkNotificationRead(ctx, "n-1", "client-1"))
	})
}

func TestCountByStatusAndPriority(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)

	mock.ExpectQuery("SELECT status, priority, COUNT").
		WillReturnRows(pgxmock.NewRows([]string{"status", "priority", "count"}).
			AddRow("open", "high", 3).
			AddRow("resolved", "low", 7))

	counts, err := r.CountByStatusAndPriority(context.Background())
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, 3, counts[0].Count)
	assert.Equal(t, "resolved", counts[1].Status)
}
