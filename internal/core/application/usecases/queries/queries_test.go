package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) Get(ctx context.Context, id string) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderReader) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func newOrder(t *testing.T, id string) *order.Order {
	t.Helper()

	createdAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	line1, err := order.NewOrderLine(id+"-line-1", "PROD-001", 2, kernel.MoneyFromFloat(49.99), createdAt)
	require.NoError(t, err)
	line2, err := order.NewOrderLine(id+"-line-2", "PROD-002", 1, kernel.MoneyFromFloat(29.99), createdAt)
	require.NoError(t, err)

	o, err := order.NewOrder(id, []order.OrderLine{line1, line2}, order.Pending, createdAt)
	require.NoError(t, err)
	return o
}

func TestNewGetOrderQuery(t *testing.T) {
	query, err := queries.NewGetOrderQuery("order-1")
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "order-1", query.OrderID())

	_, err = queries.NewGetOrderQuery("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	assert.ErrorIs(t, queries.GetOrderQuery{}.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
}

func TestGetOrderQueryHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := newOrder(t, "order-1")

	reader := new(MockOrderReader)
	reader.On("Get", ctx, "order-1").Return(o, nil).Once()

	query, _ := queries.NewGetOrderQuery("order-1")
	resp, err := queries.NewGetOrderQueryHandler(reader).Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, "order-1", resp.ID)
	assert.Equal(t, "PENDING", resp.Status)
	assert.Equal(t, "129.97", resp.TotalAmount.String())
	assert.Equal(t, o.CreatedAt(), resp.CreatedAt)
	assert.Equal(t, o.UpdatedAt(), resp.UpdatedAt)
	require.Len(t, resp.OrderLines, 2)
	assert.Equal(t, "order-1-line-1", resp.OrderLines[0].ID)
	assert.Equal(t, "PROD-001", resp.OrderLines[0].ProductID)
	assert.Equal(t, 2, resp.OrderLines[0].Quantity)
	assert.Equal(t, "49.99", resp.OrderLines[0].UnitPrice.String())
	assert.Equal(t, "99.98", resp.OrderLines[0].TotalAmount.String())
	reader.AssertExpectations(t)
}

func TestGetOrderQueryHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()

	reader := new(MockOrderReader)
	reader.On("Get", ctx, "missing").Return(nil, errs.NewObjectNotFoundError("order", "missing")).Once()

	query, _ := queries.NewGetOrderQuery("missing")
	_, err := queries.NewGetOrderQueryHandler(reader).Handle(ctx, query)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGetOrderQueryHandler_Handle_InvalidQuery(t *testing.T) {
	reader := new(MockOrderReader)

	_, err := queries.NewGetOrderQueryHandler(reader).Handle(t.Context(), queries.GetOrderQuery{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be created via NewGetOrderQuery constructor")
	reader.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestListOrdersQueryHandler_Handle(t *testing.T) {
	t.Run("should keep reader order", func(t *testing.T) {
		ctx := t.Context()
		reader := new(MockOrderReader)
		reader.On("GetAll", ctx).Return([]*order.Order{newOrder(t, "order-2"), newOrder(t, "order-1")}, nil).Once()

		resp, err := queries.NewListOrdersQueryHandler(reader).Handle(ctx, queries.NewListOrdersQuery())

		require.NoError(t, err)
		require.Len(t, resp, 2)
		assert.Equal(t, "order-2", resp[0].ID)
		assert.Equal(t, "order-1", resp[1].ID)
	})

	t.Run("should return empty slice for empty store", func(t *testing.T) {
		ctx := t.Context()
		reader := new(MockOrderReader)
		reader.On("GetAll", ctx).Return([]*order.Order{}, nil).Once()

		resp, err := queries.NewListOrdersQueryHandler(reader).Handle(ctx, queries.NewListOrdersQuery())

		require.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Empty(t, resp)
	})

	t.Run("should propagate reader errors", func(t *testing.T) {
		ctx := t.Context()
		reader := new(MockOrderReader)
		reader.On("GetAll", ctx).Return(nil, errors.New("db down")).Once()

		resp, err := queries.NewListOrdersQueryHandler(reader).Handle(ctx, queries.NewListOrdersQuery())

		require.EqualError(t, err, "db down")
		assert.Nil(t, resp)
	})

	t.Run("should reject unconstructed query", func(t *testing.T) {
		_, err := queries.NewListOrdersQueryHandler(new(MockOrderReader)).Handle(t.Context(), queries.ListOrdersQuery{})

		require.ErrorIs(t, err, queries.ErrListOrdersQueryIsNotConstructed)
	})
}
