package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Secure   bool
}

// SMTPMailer delivers mail over plain SMTP, optionally through implicit TLS.
type SMTPMailer struct {
	cfg SMTPConfig
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) SendVerificationEmail(ctx context.Context, to, otp, magicLink string) error {
	body := fmt.Sprintf(
		"<p>Your verification code is <b>%s</b>.</p>"+
			"<p>Or verify directly: <a href=\"%s\">%s</a></p>"+
			"<p>The code expires in 15 minutes.</p>",
		otp, magicLink, magicLink)
	return m.send(ctx, to, "Verify your email", body)
}

func (m *SMTPMailer) SendPasswordResetEmail(ctx context.Context, to, resetLink string) error {
	body := fmt.Sprintf(
		"<p>Reset your password: <a href=\"%s\">%s</a></p>"+
			"<p>The link expires in 1 hour. If you did not request this, ignore this email.</p>",
		resetLink, resetLink)
	return m.send(ctx, to, "Reset your password", body)
}

func (m *SMTPMailer) send(_ context.Context, to, subject, body string) error {
	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %s\r\n", m.cfg.From))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	if m.cfg.Secure {
		tlsCfg := &tls.Config{ServerName: m.cfg.Host}
		conn, err := tls.Dial("tcp", addr, tlsCfg)
		if err != nil {
			return err
		}
		client, err := smtp.NewClient(conn, m.cfg.Host)
		if err != nil {
			return err
		}
		defer client.Quit()

		if m.cfg.Username != "" {
			auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
			if err := client.Auth(auth); err != nil {
				return err
			}
		}
		if err := client.Mail(m.cfg.From); err != nil {
			return err
		}
		if err := client.Rcpt(to); err != nil {
			return err
		}
		w, err := client.Data()
		if err != nil {
			return err
		}
		if _, err := w.Write([]byte(msg.String())); err != nil {
			return err
		}
		return w.Close()
	}

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}
	return smtp.SendMail(addr, auth, m.cfg.From, []string{to}, []byte(msg.String()))
}
