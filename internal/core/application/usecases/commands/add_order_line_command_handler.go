package commands

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// AddOrderLineCommandHandler adds lines to existing orders.
type AddOrderLineCommandHandler struct {
	uowFactory  OrderUoWFactory
	idGenerator ports.IdentifierGenerator
}

// NewAddOrderLineCommandHandler creates a handler for adding order lines.
func NewAddOrderLineCommandHandler(
	uowFactory OrderUoWFactory,
	idGenerator ports.IdentifierGenerator,
) AddOrderLineCommandHandler {
	return AddOrderLineCommandHandler{
		uowFactory:  uowFactory,
		idGenerator: idGenerator,
	}
}

// Handle builds the new line and merges it into the stored order.
// A non-positive quantity fails with *order.InvalidQuantityError before the
// order is loaded.
func (h AddOrderLineCommandHandler) Handle(ctx context.Context, cmd AddOrderLineCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	line, err := order.NewOrderLine(
		h.idGenerator.Generate(),
		cmd.ProductID(),
		cmd.Quantity(),
		cmd.UnitPrice(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(current *order.Order) (*order.Order, error) {
		return current.AddOrderLine(line)
	})
}
