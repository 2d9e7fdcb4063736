package ports

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Both the in-memory and the PostgreSQL adapters implement it with the same
// observable behavior.
type OrderRepository interface {
	// Create persists a new order aggregate.
	// Returns *SaveFailedError when an order with the same identifier already exists.
	Create(ctx context.Context, aggregate *order.Order) error

	// Update replaces the stored state of an existing order aggregate.
	// Returns *SaveFailedError when the order does not exist or was changed
	// concurrently since aggregate was loaded.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identifier.
	// Returns *errs.ObjectNotFoundError when no order matches.
	Get(ctx context.Context, id string) (*order.Order, error)

	// GetAll returns every stored order in creation order.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllPendingCreatedBefore returns the Pending orders placed before t,
	// oldest first.
	GetAllPendingCreatedBefore(ctx context.Context, t time.Time) ([]*order.Order, error)
}
