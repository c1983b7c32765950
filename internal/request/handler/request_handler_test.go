package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluearnk/bluearnk-api/config"
	authhandler "github.com/bluearnk/bluearnk-api/internal/auth/handler"
	authservice "github.com/bluearnk/bluearnk-api/internal/auth/service"
	"github.com/bluearnk/bluearnk-api/internal/mocks"
	"github.com/bluearnk/bluearnk-api/internal/ratelimit"
	"github.com/bluearnk/bluearnk-api/internal/request/domain"
	"github.com/bluearnk/bluearnk-api/internal/request/dto"
	"github.com/bluearnk/bluearnk-api/internal/request/handler"
	"github.com/bluearnk/bluearnk-api/internal/request/service"
)

type requestFixture struct {
	repo     *mocks.MockRequestRepository
	tokenSvc *authservice.TokenService
	app      *fiber.App
}

func newRequestFixture(ctrl *gomock.Controller) *requestFixture {
	f := &requestFixture{
		repo:     mocks.NewMockRequestRepository(ctrl),
		tokenSvc: authservice.NewTokenService("access-secret", "refresh-secret", 15, 43200),
	}

	users := mocks.NewMockUserRepository(ctrl)
	tokens := mocks.NewMockTokenRepository(ctrl)
	mail := mocks.NewMockMailer(ctrl)
	cooldown := ratelimit.NewEmailCooldown(nil, time.Minute)
	authSvc := authservice.NewAuthService(users, tokens, f.tokenSvc, mail, cooldown, &config.Config{}, nil)
	authH := authhandler.NewAuthHandler(authSvc, f.tokenSvc)

	requestSvc := service.NewRequestService(f.repo, nil, nil)

	f.app = fiber.New()
	handler.RegisterRoutes(f.app, handler.NewRequestHandler(requestSvc), authH)
	return f
}

func (f *requestFixture) bearer(t *testing.T, userID, role string) string {
	t.Helper()
	access, _, err := f.tokenSvc.GenerateAccess(userID, userID+"@example.com", role)
	require.NoError(t, err)
	return "Bearer " + access
}

func (f *requestFixture) do(t *testing.T, method, path, auth string, payload any) (int, []byte) {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	resp, err := f.app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(resp.Body)
	return resp.StatusCode, buf.Bytes()
}

func TestCreateRequestEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newRequestFixture(ctrl)

	t.Run("requires auth", func(t *testing.T) {
		status, _ := f.do(t, http.MethodPost, "/api/v1/requests", "",
			dto.CreateRequestInput{Title: "x"})
		assert.Equal(t, fiber.StatusUnauthorized, status)
	})

	t.Run("creates for the authenticated client", func(t *testing.T) {
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, r *domain.ServiceRequest) error {
				assert.Equal(t, "client-1", r.ClientID)
				return nil
			})

		status, body := f.do(t, http.MethodPost, "/api/v1/requests", f.bearer(t, "client-1", "client"),
			dto.CreateRequestInput{Title: "Broken export", Category: "billing"})

		assert.Equal(t, fiber.StatusCreated, status)
		var out dto.RequestOutput
		require.NoError(t, json.Unmarshal(body, &out))
		assert.Equal(t, domain.StatusOpen, out.Status)
	})

	t.Run("rejects empty title", func(t *testing.T) {
		status, _ := f.do(t, http.MethodPost, "/api/v1/requests", f.bearer(t, "client-1", "client"),
			dto.CreateRequestInput{})
		assert.Equal(t, fiber.StatusBadRequest, status)
	})
}

func TestListRequestsEndpoint_RoleScoping(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newRequestFixture(ctrl)

	t.Run("client listing is scoped", func(t *testing.T) {
		f.repo.EXPECT().ListByClientID(gomock.Any(), "client-1").Return(nil, nil)

		status, _ := f.do(t, http.MethodGet, "/api/v1/requests", f.bearer(t, "client-1", "client"), nil)
		assert.Equal(t, fiber.StatusOK, status)
	})

	t.Run("admin sees all", func(t *testing.T) {
		f.repo.EXPECT().ListAll(gomock.Any()).Return(nil, nil)

		status, _ := f.do(t, http.MethodGet, "/api/v1/requests", f.bearer(t, "admin-1", "admin"), nil)
		assert.Equal(t, fiber.StatusOK, status)
	})
}

func TestUpdateRequestEndpoint_StaffOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newRequestFixture(ctrl)

	inProgress := domain.StatusInProgress

	t.Run("client is forbidden", func(t *testing.T) {
		status, _ := f.do(t, http.MethodPatch, "/api/v1/requests/req-1", f.bearer(t, "client-1", "client"),
			dto.UpdateRequestInput{Status: &inProgress})
		assert.Equal(t, fiber.StatusForbidden, status)
	})

	t.Run("staff can move status", func(t *testing.T) {
		req := &domain.ServiceRequest{ID: "req-1", ClientID: "client-1", Status: domain.StatusOpen}

		f.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(req, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(nil)

		status, _ := f.do(t, http.MethodPatch, "/api/v1/requests/req-1", f.bearer(t, "staff-1", "staff"),
			dto.UpdateRequestInput{Status: &inProgress})
		assert.Equal(t, fiber.StatusOK, status)
	})

	t.Run("unknown request is not found", func(t *testing.T) {
		f.repo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, nil)

		status, _ := f.do(t, http.MethodPatch, "/api/v1/requests/missing", f.bearer(t, "staff-1", "staff"),
			dto.UpdateRequestInput{Status: &inProgress})
		assert.Equal(t, fiber.StatusNotFound, status)
	})
}

func TestStatusReportEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newRequestFixture(ctrl)

	t.Run("client is forbidden", func(t *testing.T) {
		status, _ := f.do(t, http.MethodGet, "/api/v1/reports/requests", f.bearer(t, "client-1", "client"), nil)
		assert.Equal(t, fiber.StatusForbidden, status)
	})

	t.Run("staff gets the aggregation", func(t *testing.T) {
		f.repo.EXPECT().CountByStatusAndPriority(gomock.Any()).Return([]domain.StatusCount{
			{Status: "open", Priority: "high", Count: 3},
		}, nil)

		status, body := f.do(t, http.MethodGet, "/api/v1/reports/requests", f.bearer(t, "staff-1", "staff"), nil)
		assert.Equal(t, fiber.StatusOK, status)

		var out []dto.StatusCountOutput
		require.NoError(t, json.Unmarshal(body, &out))
		require.Len(t, out, 1)
		assert.Equal(t, 3, out[0].Count)
	})
}

func TestNotificationEndpoints(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newRequestFixture(ctrl)

	f.repo.EXPECT().ListNotifications(gomock.Any(), "client-1").
		Return([]domain.Notification{{ID: "n-1", UserID: "client-1", Message: "moved"}}, nil)

	status, _ := f.do(t, http.MethodGet, "/api/v1/notifications", f.bearer(t, "client-1", "client"), nil)
	assert.Equal(t, fiber.StatusOK, status)

	f.repo.EXPECT().MarkNotificationRead(gomock.Any(), "n-1", "client-1").Return(nil)

	status, _ = f.do(t, http.MethodPatch, "/api/v1/notifications/n-1/read", f.bearer(t, "client-1", "client"), nil)
	assert.Equal(t, fiber.StatusOK, status)
}
