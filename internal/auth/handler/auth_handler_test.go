package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/bluearnk/bluearnk-api/config"
	"github.com/bluearnk/bluearnk-api/internal/auth/domain"
	"github.com/bluearnk/bluearnk-api/internal/auth/dto"
	"github.com/bluearnk/bluearnk-api/internal/auth/handler"
	"github.com/bluearnk/bluearnk-api/internal/auth/service"
	autherror "github.com/bluearnk/bluearnk-api/internal/errors"
	"github.com/bluearnk/bluearnk-api/internal/mocks"
	"github.com/bluearnk/bluearnk-api/internal/ratelimit"
)

type handlerFixture struct {
	users    *mocks.MockUserRepository
	tokens   *mocks.MockTokenRepository
	tokenSvc *mocks.MockTokenGenerator
	mail     *mocks.MockMailer
	app      *fiber.App
}

func newHandlerFixture(ctrl *gomock.Controller) *handlerFixture {
	f := &handlerFixture{
		users:    mocks.NewMockUserRepository(ctrl),
		tokens:   mocks.NewMockTokenRepository(ctrl),
		tokenSvc: mocks.NewMockTokenGenerator(ctrl),
		mail:     mocks.NewMockMailer(ctrl),
	}
	cfg := &config.Config{
		BcryptCost:       bcrypt.MinCost,
		LoginMaxAttempts: 5,
		LoginWindowMin:   15,
		BaseURL:          "http://localhost:8080",
	}
	cooldown := ratelimit.NewEmailCooldown(nil, time.Minute)
	authService := service.NewAuthService(f.users, f.tokens, f.tokenSvc, f.mail, cooldown, cfg, nil)
	authHandler := handler.NewAuthHandler(authService, f.tokenSvc)

	f.app = fiber.New()
	handler.RegisterRoutes(f.app, authHandler)
	return f
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload any) (int, map[string]any) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp.StatusCode, decoded
}

func TestSignupEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newHandlerFixture(ctrl)

	t.Run("success", func(t *testing.T) {
		f.users.EXPECT().GetByEmail(gomock.Any(), "new@example.com").Return(nil, nil)
		f.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		f.tokens.EXPECT().CreateEmailVerificationToken(gomock.Any(), gomock.Any()).Return(nil)
		f.mail.EXPECT().SendVerificationEmail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		status, body := doJSON(t, f.app, "POST", "/api/v1/signup",
			dto.SignupInput{Email: "new@example.com", Password: "password123"})

		assert.Equal(t, fiber.StatusCreated, status)
		assert.Equal(t, "new@example.com", body["email"])
	})

	t.Run("email already in use", func(t *testing.T) {
		f.users.EXPECT().GetByEmail(gomock.Any(), "taken@example.com").
			Return(&domain.User{ID: "existing"}, nil)

		status, _ := doJSON(t, f.app, "POST", "/api/v1/signup",
			dto.SignupInput{Email: "taken@example.com", Password: "password123"})

		assert.Equal(t, fiber.StatusConflict, status)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/signup", bytes.NewReader([]byte("{")))
		req.Header.Set("Content-Type", "application/json")
		resp, err := f.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestLoginEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newHandlerFixture(ctrl)

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &domain.User{
		ID:            "user-1",
		Email:         "test@example.com",
		PasswordHash:  string(hashed),
		Role:          "client",
		Active:        true,
		EmailVerified: true,
	}

	t.Run("success", func(t *testing.T) {
		f.users.EXPECT().CountRecentFailedAttempts(gomock.Any(), user.Email, "0.0.0.0", 15).Return(0, nil)
		f.users.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)
		f.tokenSvc.EXPECT().Generate(user.ID, user.Email, user.Role).
			Return("access-token", "refresh-token", time.Now().Add(time.Hour), nil)
		f.tokens.EXPECT().StoreRefreshToken(gomock.Any(), gomock.Any()).Return(nil)
		f.users.EXPECT().UpdateLastLogin(gomock.Any(), user.ID, gomock.Any()).Return(nil)
		f.users.EXPECT().RecordLoginAttempt(gomock.Any(), user.Email, "0.0.0.0", true).Return(nil)
		f.tokenSvc.EXPECT().GetAccessTokenExpiry().Return(15 * time.Minute)

		status, body := doJSON(t, f.app, "POST", "/api/v1/login",
			dto.LoginInput{Email: user.Email, Password: "password123"})

		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, "access-token", body["access_token"])
		assert.Equal(t, "refresh-token", body["refresh_token"])
	})

	t.Run("invalid credentials", func(t *testing.T) {
		f.users.EXPECT().CountRecentFailedAttempts(gomock.Any(), user.Email, "0.0.0.0", 15).Return(0, nil)
		f.users.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)
		f.users.EXPECT().RecordLoginAttempt(gomock.Any(), user.Email, "0.0.0.0", false).Return(nil)

		status, _ := doJSON(t, f.app, "POST", "/api/v1/login",
			dto.LoginInput{Email: user.Email, Password: "wrong"})

		assert.Equal(t, fiber.StatusUnauthorized, status)
	})

	t.Run("unverified email is forbidden", func(t *testing.T) {
		unverified := *user
		unverified.EmailVerified = false

		f.users.EXPECT().CountRecentFailedAttempts(gomock.Any(), user.Email, "0.0.0.0", 15).Return(0, nil)
		f.users.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(&unverified, nil)

		status, body := doJSON(t, f.app, "POST", "/api/v1/login",
			dto.LoginInput{Email: user.Email, Password: "password123"})

		assert.Equal(t, fiber.StatusForbidden, status)
		assert.Equal(t, autherror.ErrEmailNotVerified.Error(), body["error"])
	})

	t.Run("disabled account is forbidden", func(t *testing.T) {
		disabled := *user
		disabled.Active = false

		f.users.EXPECT().CountRecentFailedAttempts(gomock.Any(), user.Email, "0.0.0.0", 15).Return(0, nil)
		f.users.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(&disabled, nil)

		status, _ := doJSON(t, f.app, "POST", "/api/v1/login",
			dto.LoginInput{Email: user.Email, Password: "password123"})

		assert.Equal(t, fiber.StatusForbidden, status)
	})

	t.Run("rate limited", func(t *testing.T) {
		f.users.EXPECT().CountRecentFailedAttempts(gomock.Any(), user.Email, "0.0.0.0", 15).Return(5, nil)

		status, _ := doJSON(t, f.app, "POST", "/api/v1/login",
			dto.LoginInput{Email: user.Email, Password: "password123"})

		assert.Equal(t, fiber.StatusTooManyRequests, status)
	})
}

func TestRefreshEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newHandlerFixture(ctrl)

	t.Run("invalid token", func(t *testing.T) {
		f.tokenSvc.EXPECT().VerifyRefreshToken("tampered").Return(nil, assert.AnError)

		status, _ := doJSON(t, f.app, "POST", "/api/v1/refresh",
			dto.RefreshInput{RefreshToken: "tampered"})

		assert.Equal(t, fiber.StatusUnauthorized, status)
	})
}

func TestLogoutEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newHandlerFixture(ctrl)

	f.tokens.EXPECT().GetRefreshTokenByHash(gomock.Any(), gomock.Any()).Return(nil, nil)

	status, body := doJSON(t, f.app, "DELETE", "/api/v1/session",
		dto.LogoutInput{RefreshToken: "whatever"})

	assert.Equal(t, fiber.StatusOK, status)
	assert.NotEmpty(t, body["message"])
}

func TestForgotPasswordEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newHandlerFixture(ctrl)

	// Unknown and known emails must be byte-identical on the wire.
	f.users.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").Return(nil, nil)

	statusUnknown, bodyUnknown := doJSON(t, f.app, "POST", "/api/v1/forgot-password",
		dto.ForgotPasswordInput{Email: "ghost@example.com"})

	user := &domain.User{ID: "user-1", Email: "known@example.com"}
	f.users.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)
	f.tokens.EXPECT().InvalidatePasswordResetTokens(gomock.Any(), user.ID).Return(nil)
	f.tokens.EXPECT().CreatePasswordResetToken(gomock.Any(), gomock.Any()).Return(nil)
	f.mail.EXPECT().SendPasswordResetEmail(gomock.Any(), user.Email, gomock.Any()).Return(nil)

	statusKnown, bodyKnown := doJSON(t, f.app, "POST", "/api/v1/forgot-password",
		dto.ForgotPasswordInput{Email: user.Email})

	assert.Equal(t, fiber.StatusOK, statusUnknown)
	assert.Equal(t, fiber.StatusOK, statusKnown)
	assert.Equal(t, bodyKnown["message"], bodyUnknown["message"])
}

func TestResetPasswordEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newHandlerFixture(ctrl)

	f.tokens.EXPECT().GetPasswordResetByHash(gomock.Any(), gomock.Any()).Return(nil, nil)

	status, _ := doJSON(t, f.app, "POST", "/api/v1/reset-password",
		dto.ResetPasswordInput{Token: "expired", NewPassword: "new-password"})

	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestVerifyEmailEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newHandlerFixture(ctrl)

	t.Run("magic link via query param", func(t *testing.T) {
		user := &domain.User{ID: "user-1", Email: "test@example.com"}
		vt := &domain.EmailVerificationToken{ID: "vt-1", UserID: user.ID}

		f.tokens.EXPECT().GetEmailVerificationByHash(gomock.Any(), gomock.Any()).Return(vt, nil)
		f.users.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)
		f.users.EXPECT().SetEmailVerified(gomock.Any(), user.ID).Return(nil)
		f.tokens.EXPECT().MarkEmailVerificationUsed(gomock.Any(), "vt-1").Return(nil)

		req := httptest.NewRequest("GET", "/api/v1/verify-email?token=opaque", nil)
		resp, err := f.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("missing token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/verify-email", nil)
		resp, err := f.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestVerifyOTPEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newHandlerFixture(ctrl)

	user := &domain.User{ID: "user-1", Email: "test@example.com"}

	f.users.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)
	f.tokens.EXPECT().GetEmailVerificationByOTP(gomock.Any(), user.ID, "000000").Return(nil, nil)

	status, _ := doJSON(t, f.app, "POST", "/api/v1/verify-otp",
		dto.VerifyOTPInput{Email: user.Email, OTP: "000000"})

	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestResendVerificationEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newHandlerFixture(ctrl)

	t.Run("unknown email gets the generic response", func(t *testing.T) {
		f.users.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").Return(nil, nil)

		status, body := doJSON(t, f.app, "POST", "/api/v1/resend-verification",
			dto.ResendVerificationInput{Email: "ghost@example.com"})

		assert.Equal(t, fiber.StatusOK, status)
		assert.NotEmpty(t, body["message"])
	})

	t.Run("already verified is a bad request", func(t *testing.T) {
		verified := &domain.User{ID: "user-1", Email: "done@example.com", EmailVerified: true}
		f.users.EXPECT().GetByEmail(gomock.Any(), verified.Email).Return(verified, nil)

		status, _ := doJSON(t, f.app, "POST", "/api/v1/resend-verification",
			dto.ResendVerificationInput{Email: verified.Email})

		assert.Equal(t, fiber.StatusBadRequest, status)
	})
}
