package commands

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// PlaceOrderCommandHandler creates new orders in Pending status.
// Identifiers for the order and each of its lines come from the IdentifierGenerator.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, kernel.NewUUIDGenerator())
//	orderID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	fmt.Printf("Order %s placed\n", orderID)
type PlaceOrderCommandHandler struct {
	uowFactory  OrderUoWFactory
	idGenerator ports.IdentifierGenerator
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	idGenerator ports.IdentifierGenerator,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory:  uowFactory,
		idGenerator: idGenerator,
	}
}

// Handle builds the order, persists it and returns its identifier.
// Domain failures (e.g. *order.InvalidQuantityError) are returned before any
// transaction is started.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	placedAt := time.Now().UTC()

	requested := cmd.Lines()
	lines := make([]order.OrderLine, 0, len(requested))
	for _, r := range requested {
		line, err := order.NewOrderLine(h.idGenerator.Generate(), r.ProductID, r.Quantity, r.UnitPrice, placedAt)
		if err != nil {
			return "", err
		}
		lines = append(lines, line)
	}

	newOrder, err := order.NewOrder(h.idGenerator.Generate(), lines, order.Pending, placedAt)
	if err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Create(ctx, newOrder); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return newOrder.ID(), nil
}
