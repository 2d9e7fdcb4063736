package commands_test

import (
	"errors"
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCancelOrderCommand(t *testing.T) {
	cmd, err := commands.NewCancelOrderCommand("order-1")
	require.NoError(t, err)
	assert.Equal(t, "order-1", cmd.OrderID())

	_, err = commands.NewCancelOrderCommand("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	assert.ErrorIs(t, commands.CancelOrderCommand{}.Validate(), commands.ErrCancelOrderCommandIsNotConstructed)
}

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	current := newTestOrder(t, "order-1", order.Pending)
	factory, uow, repo := expectMutation(t, current, func(o *order.Order) bool {
		return o.ID() == "order-1" && o.Status() == order.Canceled && o.Version() == current.Version()
	})

	cmd, _ := commands.NewCancelOrderCommand("order-1")
	err := commands.NewCancelOrderCommandHandler(factory).Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Pending, current.Status())
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_CannotBeCanceled(t *testing.T) {
	ctx := t.Context()
	current := newTestOrder(t, "order-1", order.Paid)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, "order-1").Return(current, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	cmd, _ := commands.NewCancelOrderCommand("order-1")
	err := commands.NewCancelOrderCommandHandler(factory).Handle(ctx, cmd)

	var cancelErr *order.OrderCannotBeCanceledError
	require.ErrorAs(t, err, &cancelErr)
	assert.Equal(t, order.Paid, cancelErr.Status)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, "missing").Return(nil, errs.NewObjectNotFoundError("order", "missing")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	cmd, _ := commands.NewCancelOrderCommand("missing")
	err := commands.NewCancelOrderCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	current := newTestOrder(t, "order-1", order.Pending)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, "order-1").Return(current, nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("update error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	cmd, _ := commands.NewCancelOrderCommand("order-1")
	err := commands.NewCancelOrderCommandHandler(factory).Handle(ctx, cmd)

	require.EqualError(t, err, "update error")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockOrderUoWFactory)

	err := commands.NewCancelOrderCommandHandler(factory).Handle(t.Context(), commands.CancelOrderCommand{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be created via NewCancelOrderCommand constructor")
}
