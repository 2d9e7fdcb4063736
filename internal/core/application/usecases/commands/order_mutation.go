package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// orderMutation derives the next snapshot of an order.
type orderMutation func(current *order.Order) (*order.Order, error)

// mutateOrder runs the load, mutate, save sequence shared by the single-order
// commands inside one unit of work. Domain errors are returned unchanged.
func mutateOrder(ctx context.Context, uowFactory OrderUoWFactory, orderID string, mutate orderMutation) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	current, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	next, err := mutate(current)
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, next); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
