package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// UpdateOrderLineCommandHandler changes line quantities.
type UpdateOrderLineCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderLineCommandHandler creates a handler for line quantity updates.
func NewUpdateOrderLineCommandHandler(uowFactory OrderUoWFactory) UpdateOrderLineCommandHandler {
	return UpdateOrderLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle replaces the line quantity. Returns *order.OrderLineNotFoundError when the
// line is not part of the order.
func (h UpdateOrderLineCommandHandler) Handle(ctx context.Context, cmd UpdateOrderLineCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(current *order.Order) (*order.Order, error) {
		return current.UpdateOrderLine(cmd.LineID(), cmd.Quantity())
	})
}
