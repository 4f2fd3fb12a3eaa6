// Package audit pushes payment lifecycle events to a message queue for the
// integration/audit consumers outside this service. Publishing is best
// effort: failures are logged and never abort the request that produced the
// event.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const (
	EventPaymentCreated   = "payment.created"
	EventPaymentProcessed = "payment.processed"
)

type Event struct {
	Type      string    `json:"type"`
	PaymentID string    `json:"payment_id"`
	Amount    string    `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}

type Publisher struct {
	conn      *amqp091.Connection
	channel   *amqp091.Channel
	queueName string
}

// NewPublisher connects to the broker and declares the durable audit queue.
func NewPublisher(url, queueName string) (*Publisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if _, err := channel.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	return &Publisher{conn: conn, channel: channel, queueName: queueName}, nil
}

// Publish sends one event. A nil publisher is a no-op so the service runs
// unchanged when no broker is configured.
func (p *Publisher) Publish(ctx context.Context, eventType, paymentID, amount string) {
	if p == nil {
		return
	}

	body, err := json.Marshal(Event{
		Type:      eventType,
		PaymentID: paymentID,
		Amount:    amount,
		Timestamp: time.Now(),
	})
	if err != nil {
		slog.Error("audit event marshal failed", "type", eventType, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = p.channel.PublishWithContext(ctx, "", p.queueName, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Body:         body,
	})
	if err != nil {
		slog.Error("audit event publish failed", "type", eventType, "payment_id", paymentID, "error", err)
	}
}

func (p *Publisher) Close() {
	if p == nil {
		return
	}
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
