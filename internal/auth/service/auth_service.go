package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/bluearnk/bluearnk-api/config"
	"github.com/bluearnk/bluearnk-api/internal/auth/domain"
	"github.com/bluearnk/bluearnk-api/internal/auth/dto"
	autherror "github.com/bluearnk/bluearnk-api/internal/errors"
	"github.com/bluearnk/bluearnk-api/internal/mailer"
	"github.com/bluearnk/bluearnk-api/internal/ratelimit"
	authconstant "github.com/bluearnk/bluearnk-api/pkg/constant"
	"github.com/bluearnk/bluearnk-api/pkg/token"
)

type AuthService struct {
	users        domain.UserRepository
	tokens       domain.TokenRepository
	tokenService TokenGenerator
	mailer       mailer.Mailer
	cooldown     *ratelimit.EmailCooldown
	cfg          *config.Config
	log          *slog.Logger
}

func NewAuthService(
	users domain.UserRepository,
	tokens domain.TokenRepository,
	tokenService TokenGenerator,
	m mailer.Mailer,
	cooldown *ratelimit.EmailCooldown,
	cfg *config.Config,
	log *slog.Logger,
) *AuthService {
	if log == nil {
		log = slog.Default()
	}
	return &AuthService{
		users:        users,
		tokens:       tokens,
		tokenService: tokenService,
		mailer:       m,
		cooldown:     cooldown,
		cfg:          cfg,
		log:          log,
	}
}

func (s *AuthService) Signup(ctx context.Context, input dto.SignupInput) (*dto.SignupOutput, error) {
	email := normalizeEmail(input.Email)

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hashed),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
		Role:         authconstant.RoleClient,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	// The account already exists at this point, so a failed email must not
	// fail the signup. issueVerificationToken logs and swallows it.
	s.issueVerificationToken(ctx, user)

	return &dto.SignupOutput{
		UserID:  user.ID,
		Email:   user.Email,
		Message: authconstant.MsgSignupSuccess,
	}, nil
}

func (s *AuthService) Login(ctx context.Context, input dto.LoginInput) (*dto.TokenResponse, error) {
	email := normalizeEmail(input.Email)

	failed, err := s.users.CountRecentFailedAttempts(ctx, email, input.IPAddress, s.cfg.LoginWindowMin)
	if err != nil {
		return nil, err
	}
	if failed >= s.cfg.LoginMaxAttempts {
		return nil, autherror.ErrTooManyLoginAttempts
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	// Credentials are checked before any account-state checks so a wrong
	// password never reveals whether the account is disabled or unverified.
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		if err := s.users.RecordLoginAttempt(ctx, email, input.IPAddress, false); err != nil {
			s.log.Warn("failed to record login attempt", "email", email, "err", err)
		}
		return nil, autherror.ErrInvalidCredentials
	}

	if !user.Active {
		return nil, autherror.ErrAccountDisabled
	}
	if !user.EmailVerified {
		return nil, autherror.ErrEmailNotVerified
	}

	accessToken, refreshToken, refreshExpiresAt, err := s.tokenService.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	rt := &domain.RefreshToken{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		TokenHash: token.Hash(refreshToken),
		IPAddress: input.IPAddress,
		UserAgent: input.UserAgent,
		ExpiresAt: refreshExpiresAt,
		CreatedAt: now,
	}
	if err := s.tokens.StoreRefreshToken(ctx, rt); err != nil {
		return nil, err
	}

	if err := s.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		s.log.Warn("failed to stamp last login", "user_id", user.ID, "err", err)
	}
	if err := s.users.RecordLoginAttempt(ctx, email, input.IPAddress, true); err != nil {
		s.log.Warn("failed to record login attempt", "email", email, "err", err)
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.tokenService.GetAccessTokenExpiry().Seconds()),
		User:         dto.NewUserOutput(user),
	}, nil
}

// Logout revokes the session matching the presented token's hash. It is
// idempotent: a token that matches nothing still yields a success message,
// and no signature verification happens here.
func (s *AuthService) Logout(ctx context.Context, input dto.LogoutInput) (*dto.MessageOutput, error) {
	rt, err := s.tokens.GetRefreshTokenByHash(ctx, token.Hash(input.RefreshToken))
	if err != nil {
		return nil, err
	}
	if rt != nil && rt.RevokedAt == nil {
		if err := s.tokens.RevokeRefreshToken(ctx, rt.ID); err != nil {
			return nil, err
		}
	}
	return &dto.MessageOutput{Message: authconstant.MsgLogoutSuccess}, nil
}

// Refresh validates the presented refresh token twice: the signature must
// verify AND the stored row must be present, unrevoked and unexpired, so a
// cryptographically valid token dies the moment the server revokes it. The
// same refresh token is returned unchanged; only the access token is new.
func (s *AuthService) Refresh(ctx context.Context, input dto.RefreshInput) (*dto.TokenResponse, error) {
	claims, err := s.tokenService.VerifyRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, autherror.ErrRefreshTokenInvalid
	}

	rt, err := s.tokens.GetRefreshTokenByHash(ctx, token.Hash(input.RefreshToken))
	if err != nil {
		return nil, err
	}
	if rt == nil {
		return nil, autherror.ErrRefreshTokenNotFound
	}
	if rt.RevokedAt != nil {
		return nil, autherror.ErrRefreshTokenRevoked
	}
	if time.Now().After(rt.ExpiresAt) {
		return nil, autherror.ErrRefreshTokenExpired
	}

	// Embedded claims may be stale; re-read the authoritative record so a
	// deactivation after issuance is caught.
	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, autherror.ErrRefreshTokenInvalid
	}

	accessToken, _, err := s.tokenService.GenerateAccess(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: input.RefreshToken,
		ExpiresIn:    int(s.tokenService.GetAccessTokenExpiry().Seconds()),
		User:         dto.NewUserOutput(user),
	}, nil
}

// ForgotPassword returns the same message whether or not the email is
// registered; only the side effects differ.
func (s *AuthService) ForgotPassword(ctx context.Context, input dto.ForgotPasswordInput) (*dto.MessageOutput, error) {
	out := &dto.MessageOutput{Message: authconstant.MsgForgotPassword}

	email := normalizeEmail(input.Email)
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return out, nil
	}
	if !s.cooldown.Allow(ctx, "reset", email) {
		return out, nil
	}

	if err := s.tokens.InvalidatePasswordResetTokens(ctx, user.ID); err != nil {
		return nil, err
	}

	opaque, err := token.NewOpaque()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	reset := &domain.PasswordResetToken{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		TokenHash: token.Hash(opaque),
		ExpiresAt: now.Add(authconstant.ResetTokenTTLMinutes * time.Minute),
		CreatedAt: now,
	}
	if err := s.tokens.CreatePasswordResetToken(ctx, reset); err != nil {
		return nil, err
	}

	resetLink := s.cfg.BaseURL + "/reset-password?token=" + opaque
	if err := s.mailer.SendPasswordResetEmail(ctx, user.Email, resetLink); err != nil {
		s.log.Error("failed to send password reset email", "user_id", user.ID, "err", err)
	}

	return out, nil
}

func (s *AuthService) ResetPassword(ctx context.Context, input dto.ResetPasswordInput) (*dto.MessageOutput, error) {
	reset, err := s.tokens.GetPasswordResetByHash(ctx, token.Hash(input.Token))
	if err != nil {
		return nil, err
	}
	if reset == nil {
		return nil, autherror.ErrInvalidResetToken
	}

	user, err := s.users.GetByID(ctx, reset.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), s.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}
	if err := s.users.UpdatePassword(ctx, user.ID, string(hashed)); err != nil {
		return nil, err
	}
	if err := s.tokens.MarkPasswordResetUsed(ctx, reset.ID); err != nil {
		return nil, err
	}

	// Any password change invalidates every session, regardless of which
	// device initiated the reset.
	if err := s.tokens.RevokeAllRefreshTokensByUserID(ctx, user.ID); err != nil {
		return nil, err
	}

	return &dto.MessageOutput{Message: authconstant.MsgResetSuccess}, nil
}

func (s *AuthService) VerifyEmailOTP(ctx context.Context, input dto.VerifyOTPInput) (*dto.MessageOutput, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrInvalidVerificationCode
	}
	if user.EmailVerified {
		return &dto.MessageOutput{Message: authconstant.MsgVerifySuccess}, nil
	}

	vt, err := s.tokens.GetEmailVerificationByOTP(ctx, user.ID, input.OTP)
	if err != nil {
		return nil, err
	}
	if vt == nil {
		return nil, autherror.ErrInvalidVerificationCode
	}

	return s.completeVerification(ctx, user.ID, vt.ID)
}

func (s *AuthService) VerifyEmailToken(ctx context.Context, input dto.VerifyTokenInput) (*dto.MessageOutput, error) {
	vt, err := s.tokens.GetEmailVerificationByHash(ctx, token.Hash(input.Token))
	if err != nil {
		return nil, err
	}
	if vt == nil {
		return nil, autherror.ErrInvalidVerificationToken
	}

	user, err := s.users.GetByID(ctx, vt.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}
	if user.EmailVerified {
		return &dto.MessageOutput{Message: authconstant.MsgVerifySuccess}, nil
	}

	return s.completeVerification(ctx, user.ID, vt.ID)
}

// ResendVerification hides nonexistent accounts behind a generic message but
// reports already-verified ones explicitly.
func (s *AuthService) ResendVerification(ctx context.Context, input dto.ResendVerificationInput) (*dto.MessageOutput, error) {
	out := &dto.MessageOutput{Message: authconstant.MsgResendVerification}

	email := normalizeEmail(input.Email)
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return out, nil
	}
	if user.EmailVerified {
		return nil, autherror.ErrEmailAlreadyVerified
	}
	if !s.cooldown.Allow(ctx, "verify", email) {
		return out, nil
	}

	if err := s.tokens.InvalidateEmailVerificationTokens(ctx, user.ID); err != nil {
		return nil, err
	}
	s.issueVerificationToken(ctx, user)

	return out, nil
}

func (s *AuthService) completeVerification(ctx context.Context, userID, tokenID string) (*dto.MessageOutput, error) {
	if err := s.users.SetEmailVerified(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.tokens.MarkEmailVerificationUsed(ctx, tokenID); err != nil {
		return nil, err
	}
	return &dto.MessageOutput{Message: authconstant.MsgVerifySuccess}, nil
}

// issueVerificationToken creates a fresh verification record carrying both
// redemption paths and dispatches the email. All failures are logged only;
// the user can always hit resend.
func (s *AuthService) issueVerificationToken(ctx context.Context, user *domain.User) {
	opaque, err := token.NewOpaque()
	if err != nil {
		s.log.Error("failed to generate verification token", "user_id", user.ID, "err", err)
		return
	}
	otp, err := token.NewOTP()
	if err != nil {
		s.log.Error("failed to generate otp", "user_id", user.ID, "err", err)
		return
	}

	now := time.Now()
	vt := &domain.EmailVerificationToken{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		TokenHash: token.Hash(opaque),
		OTP:       otp,
		ExpiresAt: now.Add(authconstant.VerificationTokenTTLMinutes * time.Minute),
		CreatedAt: now,
	}
	if err := s.tokens.CreateEmailVerificationToken(ctx, vt); err != nil {
		s.log.Error("failed to store verification token", "user_id", user.ID, "err", err)
		return
	}

	magicLink := s.cfg.BaseURL + "/verify-email?token=" + opaque
	if err := s.mailer.SendVerificationEmail(ctx, user.Email, otp, magicLink); err != nil {
		s.log.Error("failed to send verification email", "user_id", user.ID, "err", err)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
