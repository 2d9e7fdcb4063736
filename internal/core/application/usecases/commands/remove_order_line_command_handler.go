package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// RemoveOrderLineCommandHandler removes lines from orders. Removing an unknown
// line leaves the lines unchanged; removing the last line fails with
// order.ErrOrderMustHaveAtLeastOneOrderLine.
type RemoveOrderLineCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveOrderLineCommandHandler creates a handler for line removal.
func NewRemoveOrderLineCommandHandler(uowFactory OrderUoWFactory) RemoveOrderLineCommandHandler {
	return RemoveOrderLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the line and saves the order.
func (h RemoveOrderLineCommandHandler) Handle(ctx context.Context, cmd RemoveOrderLineCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(current *order.Order) (*order.Order, error) {
		return current.RemoveOrderLine(cmd.LineID())
	})
}
