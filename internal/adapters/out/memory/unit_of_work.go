package memory

import (
	"context"
	"errors"
	"log/slog"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// ErrInvalidTransaction is returned by Commit and Rollback without a preceding Begin.
var ErrInvalidTransaction = errors.New("invalid transaction")

// UnitOfWorkFactory creates units of work sharing one Store.
type UnitOfWorkFactory struct {
	store     *Store
	publisher ports.OrderEventPublisher
	logger    *slog.Logger
}

// NewUnitOfWorkFactory creates a factory. publisher receives every order saved
// by a committed unit of work.
func NewUnitOfWorkFactory(store *Store, publisher ports.OrderEventPublisher, logger *slog.Logger) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{
		store:     store,
		publisher: publisher,
		logger:    logger.With("component", "memory_unit_of_work"),
	}
}

// Create returns a fresh unit of work.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{
		store:     f.store,
		publisher: f.publisher,
		logger:    f.logger,
	}
}

// UnitOfWork stages order writes between Begin and Commit. A unit of work
// belongs to one goroutine.
type UnitOfWork struct {
	store     *Store
	publisher ports.OrderEventPublisher
	logger    *slog.Logger

	active bool
	writes []write
}

// Begin starts staging. Calling Begin on an active unit of work is a no-op.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if uow.active {
		return nil
	}

	uow.active = true
	uow.writes = nil
	return nil
}

// Commit applies all staged writes atomically and then publishes the saved orders.
func (uow *UnitOfWork) Commit(ctx context.Context) error {
	if !uow.active {
		return ErrInvalidTransaction
	}

	writes := uow.writes
	uow.active = false
	uow.writes = nil

	if err := uow.store.apply(writes); err != nil {
		return err
	}

	for _, w := range writes {
		uow.publish(ctx, w.aggregate)
	}
	return nil
}

// Rollback discards staged writes.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrInvalidTransaction
	}

	uow.active = false
	uow.writes = nil
	return nil
}

// OrderRepository returns a repository bound to this unit of work.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{store: uow.store, uow: uow}
}

func (uow *UnitOfWork) stage(w write) {
	uow.writes = append(uow.writes, w)
}

// staged returns the latest staged state of the order.
func (uow *UnitOfWork) staged(id string) (*order.Order, bool) {
	for i := len(uow.writes) - 1; i >= 0; i-- {
		if uow.writes[i].aggregate.ID() == id {
			return uow.writes[i].aggregate, true
		}
	}
	return nil, false
}

func (uow *UnitOfWork) publish(ctx context.Context, aggregate *order.Order) {
	if uow.publisher == nil {
		return
	}

	if err := uow.publisher.PublishOrderChanged(ctx, aggregate); err != nil {
		uow.logger.WarnContext(ctx, "Failed to publish order changed event",
			"order_id", aggregate.ID(),
			"error", err,
		)
	}
}
