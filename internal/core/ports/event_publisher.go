package ports

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// OrderEventPublisher notifies downstream systems about committed order changes.
type OrderEventPublisher interface {
	// PublishOrderChanged announces the current state of aggregate.
	PublishOrderChanged(ctx context.Context, aggregate *order.Order) error
}
