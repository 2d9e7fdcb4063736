package kafka

import (
	"context"

	"github.com/segmentio/kafka-go"
)

// MessageWriter exposes the writer seam to tests.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NewOrderChangedPublisherWithWriter creates a publisher around a custom writer.
func NewOrderChangedPublisherWithWriter(w MessageWriter) *OrderChangedPublisher {
	return &OrderChangedPublisher{writer: w}
}
