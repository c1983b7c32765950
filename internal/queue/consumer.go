package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/bluearnk/bluearnk-api/internal/mailer"
)

// Consumer drains the email.outbound queue and delivers each job through the
// delegate mailer. It runs a reconnect loop with capped backoff and never
// takes the server down: failed jobs are rejected without requeue so a bad
// message cannot wedge the queue.
type Consumer struct {
	url      string
	delegate mailer.Mailer
	log      *slog.Logger
}

func NewConsumer(url string, delegate mailer.Mailer, log *slog.Logger) *Consumer {
	return &Consumer{url: url, delegate: delegate, log: log}
}

func (c *Consumer) Run(ctx context.Context) {
	backoff := time.Second
	for {
		if ctx.Err() != nil {
			return
		}
		conn, err := amqp.Dial(c.url)
		if err != nil {
			c.log.Warn("email consumer: dial failed", "err", err, "retry_in", backoff.String())
			select {
			case <-ctx.Done():
				return
			case <-time.After(backoff):
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		if err := c.consumeLoop(ctx, conn); err != nil {
			c.log.Warn("email consumer: loop ended, reconnecting", "err", err)
			_ = conn.Close()
			select {
			case <-ctx.Done():
				return
			case <-time.After(2 * time.Second):
			}
		}
	}
}

func (c *Consumer) consumeLoop(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(20, 0, false); err != nil {
		c.log.Warn("email consumer: set QoS failed", "err", err)
	}

	if _, err := ch.QueueDeclare(EmailQueueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.Consume(EmailQueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			if err := c.handle(ctx, d.Body); err != nil {
				c.log.Error("email consumer: handle job failed", "err", err)
				_ = d.Nack(false, false)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, body []byte) error {
	var job EmailJob
	if err := json.Unmarshal(body, &job); err != nil {
		return fmt.Errorf("unmarshal job: %w", err)
	}

	switch job.Kind {
	case EmailKindVerification:
		return c.delegate.SendVerificationEmail(ctx, job.To, job.OTP, job.MagicLink)
	case EmailKindPasswordReset:
		return c.delegate.SendPasswordResetEmail(ctx, job.To, job.ResetLink)
	default:
		return fmt.Errorf("unknown email kind %q", job.Kind)
	}
}
