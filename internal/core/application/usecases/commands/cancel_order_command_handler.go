package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// CancelOrderCommandHandler cancels orders.
//
// Example:
//
//	err := handler.Handle(ctx, cmd)
//	var cancelErr *order.OrderCannotBeCanceledError
//	if errors.As(err, &cancelErr) {
//	    log.Printf("order is already %s", cancelErr.Status)
//	}
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, cancels it and saves the Canceled snapshot.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(current *order.Order) (*order.Order, error) {
		return current.Cancel()
	})
}
