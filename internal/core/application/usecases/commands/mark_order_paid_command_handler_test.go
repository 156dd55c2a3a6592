package commands_test

import (
	"testing"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarkOrderPaidCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := pendingOrderWithItem(t)
	require.NoError(t, aggregate.Confirm())
	cmd, _ := commands.NewMarkOrderPaidCommand(aggregate.ID())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("FindByID", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Save", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	publisher := new(MockEventPublisher)
	publisher.On("PublishOrderPaid", mock.Anything, aggregate).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkOrderPaidCommandHandler(factory, publisher, testLogger())
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, order.Paid, aggregate.Status())
	publisher.AssertExpectations(t)
}

func TestMarkOrderPaidCommandHandler_Handle_PendingOrderFails(t *testing.T) {
	ctx := t.Context()
	aggregate := pendingOrderWithItem(t)
	cmd, _ := commands.NewMarkOrderPaidCommand(aggregate.ID())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("FindByID", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkOrderPaidCommandHandler(factory, nil, testLogger())
	err := h.Handle(ctx, cmd)
	assert.ErrorIs(t, err, order.ErrOrderNotConfirmed)
	assert.Equal(t, order.Pending, aggregate.Status())
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestMarkOrderPaidCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewMarkOrderPaidCommand(order.NewOrderID())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("FindByID", mock.Anything, cmd.OrderID()).Return(nil, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkOrderPaidCommandHandler(factory, nil, testLogger())
	err := h.Handle(ctx, cmd)
	assert.ErrorIs(t, err, order.ErrOrderNotFound)
}
