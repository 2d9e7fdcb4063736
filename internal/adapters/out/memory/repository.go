package memory

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// OrderRepository implements ports.OrderRepository on top of a Store.
// Bound to a UnitOfWork it stages writes until Commit; unbound it writes through.
type OrderRepository struct {
	store *Store
	uow   *UnitOfWork
}

// NewOrderRepository creates a write-through repository over store.
func NewOrderRepository(store *Store) *OrderRepository {
	return &OrderRepository{store: store}
}

// Create stores a new order. Returns *ports.SaveFailedError on a duplicate identifier.
func (r *OrderRepository) Create(ctx context.Context, aggregate *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if _, exists := r.lookup(aggregate.ID()); exists {
		return ports.NewSaveFailedError(aggregate.ID(), ports.ErrOrderAlreadyExists)
	}

	return r.write(write{kind: writeCreate, aggregate: aggregate})
}

// Update replaces a stored order. The stored version must match aggregate.Version().
func (r *OrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if _, exists := r.lookup(aggregate.ID()); !exists {
		return ports.NewSaveFailedError(aggregate.ID(), errs.NewObjectNotFoundError("order", aggregate.ID()))
	}

	return r.write(write{kind: writeUpdate, aggregate: aggregate})
}

// Get returns the order, including changes staged by the bound unit of work.
func (r *OrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	o, ok := r.lookup(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return o, nil
}

// GetAll returns committed orders in insertion order.
func (r *OrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.store.all(), nil
}

// GetAllPendingCreatedBefore returns committed Pending orders placed before t.
func (r *OrderRepository) GetAllPendingCreatedBefore(ctx context.Context, t time.Time) ([]*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.store.pendingCreatedBefore(t), nil
}

func (r *OrderRepository) lookup(id string) (*order.Order, bool) {
	if r.uow != nil {
		if o, ok := r.uow.staged(id); ok {
			return o, true
		}
	}
	return r.store.get(id)
}

func (r *OrderRepository) write(w write) error {
	if r.uow != nil && r.uow.active {
		r.uow.stage(w)
		return nil
	}
	return r.store.apply([]write{w})
}
