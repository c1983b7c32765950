package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher implements mailer.Mailer by handing jobs to the broker instead
// of delivering them inline. Dispatch stays best-effort: a broker outage
// surfaces as an error the caller logs and ignores.
type Publisher struct {
	url string
}

func NewPublisher(url string) *Publisher {
	return &Publisher{url: url}
}

func (p *Publisher) SendVerificationEmail(ctx context.Context, to, otp, magicLink string) error {
	return p.publish(ctx, EmailJob{
		Kind:      EmailKindVerification,
		To:        to,
		OTP:       otp,
		MagicLink: magicLink,
	})
}

func (p *Publisher) SendPasswordResetEmail(ctx context.Context, to, resetLink string) error {
	return p.publish(ctx, EmailJob{
		Kind:      EmailKindPasswordReset,
		To:        to,
		ResetLink: resetLink,
	})
}

func (p *Publisher) publish(ctx context.Context, job EmailJob) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("rabbitmq dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("rabbitmq channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	// Idempotent declare; durable so jobs survive broker restarts.
	if _, err := ch.QueueDeclare(EmailQueueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal job: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", EmailQueueName, false, false, pub); err != nil {
		return fmt.Errorf("publish: %w", err)
	}
	return nil
}
