// Package kafka publishes order change notifications to Kafka using
// github.com/segmentio/kafka-go. With no brokers configured the service uses
// NoopPublisher instead.
package kafka

import (
	"strings"

	"github.com/segmentio/kafka-go"
)

// Client holds the broker list shared by writers.
type Client struct {
	Brokers []string
}

// NewClient parses a comma separated broker list. Empty entries are skipped.
func NewClient(brokersCSV string) *Client {
	brokers := []string{}
	for _, b := range strings.Split(brokersCSV, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return &Client{Brokers: brokers}
}

// Enabled reports whether any broker is configured.
func (c *Client) Enabled() bool {
	return len(c.Brokers) > 0
}

// NewWriter creates a writer for topic. Messages with the same key land on the
// same partition, so events of one order stay ordered.
func (c *Client) NewWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(c.Brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}
