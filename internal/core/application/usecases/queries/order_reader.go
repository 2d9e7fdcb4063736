// Package queries contains read operations over orders.
// Implements the Query pattern for the read side of the CQRS architecture:
// handlers never modify state and return flat response structures.
package queries

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// OrderReader is the read-only part of ports.OrderRepository used by query handlers.
type OrderReader interface {
	Get(ctx context.Context, id string) (*order.Order, error)
	GetAll(ctx context.Context) ([]*order.Order, error)
}
