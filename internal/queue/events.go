package queue

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const EventQueueName = "request.events"

const EventRequestStatusChanged = "request.status_changed"

// RequestEvent is published when a service request transitions between
// statuses, so downstream consumers can fan out notifications.
type RequestEvent struct {
	Type       string    `json:"type"`
	RequestID  string    `json:"request_id"`
	ClientID   string    `json:"client_id"`
	OldStatus  string    `json:"old_status"`
	NewStatus  string    `json:"new_status"`
	OccurredAt time.Time `json:"occurred_at"`
}

type EventPublisher struct {
	url string
}

func NewEventPublisher(url string) *EventPublisher {
	return &EventPublisher{url: url}
}

func (p *EventPublisher) PublishRequestEvent(ctx context.Context, event RequestEvent) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return err
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(EventQueueName, true, false, false, false, nil); err != nil {
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return ch.PublishWithContext(ctx, "", EventQueueName, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
}
