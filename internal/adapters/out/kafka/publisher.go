package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// OrderChangedEventType is the type field of every published event.
const OrderChangedEventType = "order.changed"

// OrderChangedEvent is the JSON payload written for every committed order change.
type OrderChangedEvent struct {
	EventID     string    `json:"event_id"`
	Type        string    `json:"type"`
	OrderID     string    `json:"order_id"`
	Status      string    `json:"status"`
	TotalAmount string    `json:"total_amount"`
	LineCount   int       `json:"line_count"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// NewOrderChangedEvent builds the event for the current state of o.
func NewOrderChangedEvent(o *order.Order, occurredAt time.Time) OrderChangedEvent {
	return OrderChangedEvent{
		EventID:     uuid.NewString(),
		Type:        OrderChangedEventType,
		OrderID:     o.ID(),
		Status:      o.Status().String(),
		TotalAmount: o.TotalAmount().String(),
		LineCount:   len(o.OrderLines()),
		OccurredAt:  occurredAt,
	}
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderChangedPublisher implements ports.OrderEventPublisher on a Kafka topic.
type OrderChangedPublisher struct {
	writer messageWriter
}

// NewOrderChangedPublisher creates a publisher writing to topic.
func NewOrderChangedPublisher(client *Client, topic string) *OrderChangedPublisher {
	return &OrderChangedPublisher{writer: client.NewWriter(topic)}
}

// PublishOrderChanged writes one event keyed by the order id.
func (p *OrderChangedPublisher) PublishOrderChanged(ctx context.Context, o *order.Order) error {
	now := time.Now().UTC()

	data, err := json.Marshal(NewOrderChangedEvent(o, now))
	if err != nil {
		return err
	}

	if err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(o.ID()),
		Value: data,
		Time:  now,
	}); err != nil {
		return fmt.Errorf("publish order %s changed: %w", o.ID(), err)
	}

	return nil
}

// Close flushes pending messages and closes the writer.
func (p *OrderChangedPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher discards events. It is used when Kafka is not configured.
type NoopPublisher struct{}

// NewNoopPublisher creates a NoopPublisher.
func NewNoopPublisher() NoopPublisher {
	return NoopPublisher{}
}

// PublishOrderChanged does nothing.
func (NoopPublisher) PublishOrderChanged(context.Context, *order.Order) error {
	return nil
}
