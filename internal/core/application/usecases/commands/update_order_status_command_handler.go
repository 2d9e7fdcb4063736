package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler drives orders through the status state machine.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the transition. Forbidden moves fail with
// *order.InvalidStatusTransitionError and nothing is saved.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(current *order.Order) (*order.Order, error) {
		return current.UpdateStatus(cmd.Status())
	})
}
