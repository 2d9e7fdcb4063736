package commands_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Create(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllPendingCreatedBefore(ctx context.Context, t time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

// sequenceGenerator returns id-1, id-2, ...
type sequenceGenerator struct{ n int }

func (g *sequenceGenerator) Generate() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

func newTestOrder(t *testing.T, id string, status order.Status) *order.Order {
	t.Helper()

	createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	line, err := order.NewOrderLine("line-1", "PROD-001", 2, kernel.MoneyFromFloat(49.99), createdAt)
	require.NoError(t, err)

	o, err := order.RestoreOrder(id, []order.OrderLine{line}, status, createdAt, createdAt, 1)
	require.NoError(t, err)
	return o
}

// expectMutation wires the mocks for a successful load, mutate, save sequence
// and returns the mocks for assertions.
func expectMutation(
	t *testing.T,
	current *order.Order,
	saved func(*order.Order) bool,
) (*MockOrderUoWFactory, *MockOrderUoW, *MockOrderRepository) {
	t.Helper()
	ctx := t.Context()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, current.ID()).Return(current, nil).Once(),
		repo.On("Update", ctx, mock.MatchedBy(saved)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	return factory, uow, repo
}
