// Package memory provides a process-local implementation of the order
// persistence ports. Orders live in a map guarded by a sync.RWMutex and are
// listed in insertion order. Writes made through a UnitOfWork are staged and
// applied atomically on Commit, with the same duplicate, missing-order and
// version checks as the PostgreSQL adapter.
package memory

import (
	"slices"
	"sync"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

type writeKind int

const (
	writeCreate writeKind = iota + 1
	writeUpdate
)

// write is one staged repository change.
type write struct {
	kind      writeKind
	aggregate *order.Order
}

// Store holds the committed orders. It is safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	orders map[string]*order.Order
	ids    []string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		orders: make(map[string]*order.Order),
		ids:    make([]string, 0),
	}
}

func (s *Store) get(id string) (*order.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	return o, ok
}

func (s *Store) all() []*order.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]*order.Order, 0, len(s.ids))
	for _, id := range s.ids {
		orders = append(orders, s.orders[id])
	}
	return orders
}

func (s *Store) pendingCreatedBefore(t time.Time) []*order.Order {
	stale := slices.DeleteFunc(s.all(), func(o *order.Order) bool {
		return o.Status() != order.Pending || !o.CreatedAt().Before(t)
	})

	slices.SortStableFunc(stale, func(a, b *order.Order) int {
		return a.CreatedAt().Compare(b.CreatedAt())
	})
	return stale
}

// apply validates the whole batch against the committed state and then
// applies it. Either every write is applied or none is.
func (s *Store) apply(writes []write) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(map[string]*order.Order, len(writes))
	created := make([]string, 0, len(writes))

	lookup := func(id string) (*order.Order, bool) {
		if o, ok := next[id]; ok {
			return o, true
		}
		o, ok := s.orders[id]
		return o, ok
	}

	for _, w := range writes {
		id := w.aggregate.ID()
		current, exists := lookup(id)

		switch w.kind {
		case writeCreate:
			if exists {
				return ports.NewSaveFailedError(id, ports.ErrOrderAlreadyExists)
			}
			next[id] = w.aggregate
			created = append(created, id)

		case writeUpdate:
			if !exists {
				return ports.NewSaveFailedError(id, errs.NewObjectNotFoundError("order", id))
			}
			if current.Version() != w.aggregate.Version() {
				return ports.NewSaveFailedError(id, errs.NewVersionIsInvalidError("version"))
			}

			bumped, err := withVersion(w.aggregate, current.Version()+1)
			if err != nil {
				return ports.NewSaveFailedError(id, err)
			}
			next[id] = bumped
		}
	}

	for id, o := range next {
		s.orders[id] = o
	}
	s.ids = append(s.ids, created...)

	return nil
}

func withVersion(o *order.Order, version int) (*order.Order, error) {
	return order.RestoreOrder(o.ID(), o.OrderLines(), o.Status(), o.CreatedAt(), o.UpdatedAt(), version)
}
