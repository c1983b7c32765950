package domain

//go:generate mockgen -destination=../../mocks/mock_repository.go -package=mocks github.com/bluearnk/bluearnk-api/internal/auth/domain UserRepository,TokenRepository

import (
	"context"
	"time"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) error
	List(ctx context.Context) ([]User, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	SetEmailVerified(ctx context.Context, userID string) error
	SetActive(ctx context.Context, userID string, active bool) error
	UpdateRole(ctx context.Context, userID, role string) error
	UpdateLastLogin(ctx context.Context, userID string, at time.Time) error
	RecordLoginAttempt(ctx context.Context, email, ip string, success bool) error
	CountRecentFailedAttempts(ctx context.Context, email, ip string, windowMinutes int) (int, error)
}

type TokenRepository interface {
	StoreRefreshToken(ctx context.Context, rt *RefreshToken) error
	GetRefreshTokenByHash(ctx context.Context, tokenHash string) (*RefreshToken, error)
	RevokeRefreshToken(ctx context.Context, id string) error
	RevokeAllRefreshTokensByUserID(ctx context.Context, userID string) error
	GetSessionsByUserID(ctx context.Context, userID string) ([]RefreshToken, error)

	CreateEmailVerificationToken(ctx context.Context, t *EmailVerificationToken) error
	GetEmailVerificationByOTP(ctx context.Context, userID, otp string) (*EmailVerificationToken, error)
	GetEmailVerificationByHash(ctx context.Context, tokenHash string) (*EmailVerificationToken, error)
	MarkEmailVerificationUsed(ctx context.Context, id string) error
	InvalidateEmailVerificationTokens(ctx context.Context, userID string) error

	CreatePasswordResetToken(ctx context.Context, t *PasswordResetToken) error
	GetPasswordResetByHash(ctx context.Context, tokenHash string) (*PasswordResetToken, error)
	MarkPasswordResetUsed(ctx context.Context, id string) error
	InvalidatePasswordResetTokens(ctx context.Context, userID string) error
}
