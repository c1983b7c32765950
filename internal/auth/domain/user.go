package domain

import "time"

type User struct {
	ID            string
	Email         string
	PasswordHash  string
	FirstName     string
	LastName      string
	Phone         string
	Role          string
	Active        bool
	EmailVerified bool
	LastLoginAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RefreshToken is one row per issued session. TokenHash is the SHA-256 of
// the signed refresh JWT; the raw token is only ever held by the client.
type RefreshToken struct {
	ID        string
	UserID    string
	TokenHash string
	IPAddress string
	UserAgent string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// EmailVerificationToken is redeemable through either its opaque form
// (stored hashed) or its short OTP; both reference the same row.
type EmailVerificationToken struct {
	ID        string
	UserID    string
	TokenHash string
	OTP       string
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
}

type PasswordResetToken struct {
	ID        string
	UserID    string
	TokenHash string
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
}

type LoginAttempt struct {
	ID          string
	Email       string
	IPAddress   string
	AttemptTime time.Time
	Successful  bool
}
