// Package mailer is the outbound notification boundary of the auth flows.
// Every implementation is best-effort from the caller's point of view: the
// services log delivery failures but never surface them to the user.
package mailer

import (
	"context"
	"log/slog"
)

//go:generate mockgen -destination=../mocks/mock_mailer.go -package=mocks github.com/bluearnk/bluearnk-api/internal/mailer Mailer

type Mailer interface {
	// SendVerificationEmail carries both redemption paths for the same
	// token record: the short OTP for display and the magic link
	// embedding the opaque token.
	SendVerificationEmail(ctx context.Context, to, otp, magicLink string) error
	SendPasswordResetEmail(ctx context.Context, to, resetLink string) error
}

// LogMailer writes would-be emails to the structured log. It is the default
// when SMTP is not configured, which keeps local development working without
// a mail provider.
type LogMailer struct {
	log *slog.Logger
}

func NewLogMailer(log *slog.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) SendVerificationEmail(ctx context.Context, to, otp, magicLink string) error {
	m.log.InfoContext(ctx, "verification email (not sent, SMTP disabled)",
		"to", to, "otp", otp, "link", magicLink)
	return nil
}

func (m *LogMailer) SendPasswordResetEmail(ctx context.Context, to, resetLink string) error {
	m.log.InfoContext(ctx, "password reset email (not sent, SMTP disabled)",
		"to", to, "link", resetLink)
	return nil
}
