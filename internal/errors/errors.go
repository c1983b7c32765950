package errors

import (
	"errors"
)

// Sentinel errors raised by the services. Handlers map them to HTTP status
// codes in one place; the groupings below mirror that mapping.

// Conflict
var ErrEmailAlreadyInUse = errors.New("email already in use")

// Unauthorized
var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrRefreshTokenInvalid  = errors.New("invalid refresh token")
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	ErrRefreshTokenRevoked  = errors.New("refresh token revoked")
	ErrRefreshTokenExpired  = errors.New("refresh token expired")
)

// Forbidden
var (
	ErrAccountDisabled  = errors.New("account is deactivated")
	ErrEmailNotVerified = errors.New("email is not verified")
	ErrRoleDenied       = errors.New("insufficient role")
)

// BadRequest
var (
	ErrInvalidResetToken        = errors.New("invalid or expired reset token")
	ErrInvalidVerificationCode  = errors.New("invalid or expired verification code")
	ErrInvalidVerificationToken = errors.New("invalid or expired verification token")
	ErrEmailAlreadyVerified     = errors.New("email is already verified")
	ErrInvalidStatus            = errors.New("invalid request status")
)

// NotFound
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrRequestNotFound = errors.New("service request not found")
)

// TooManyRequests
var ErrTooManyLoginAttempts = errors.New("too many failed login attempts")
