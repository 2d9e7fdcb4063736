package commands

import (
	"context"
)

// CancelStalePendingOrdersCommandHandler cancels abandoned Pending orders in one
// transaction. Any failure rolls back the whole batch.
type CancelStalePendingOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelStalePendingOrdersCommandHandler creates a handler for stale order cleanup.
func NewCancelStalePendingOrdersCommandHandler(uowFactory OrderUoWFactory) CancelStalePendingOrdersCommandHandler {
	return CancelStalePendingOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels every stale Pending order and returns how many were canceled.
func (h CancelStalePendingOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd CancelStalePendingOrdersCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	stale, err := orderRepo.GetAllPendingCreatedBefore(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}
	if len(stale) == 0 {
		return 0, nil
	}

	for _, o := range stale {
		canceled, cancelErr := o.Cancel()
		if cancelErr != nil {
			return 0, cancelErr
		}

		if err = orderRepo.Update(ctx, canceled); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(stale), nil
}
