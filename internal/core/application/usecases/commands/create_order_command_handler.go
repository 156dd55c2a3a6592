package commands

import (
	"context"

	"shop/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for opening orders.
// Creates new aggregates in pending status with a fresh identifier and no
// items.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the identifier of
// the created order. Uses a transaction to ensure the order is either fully
// persisted or rolled back on error.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (order.OrderID, error) {
	if err := cmd.Validate(); err != nil {
		return order.OrderID{}, err
	}

	aggregate, err := order.NewOrder(cmd.CustomerID())
	if err != nil {
		return order.OrderID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return order.OrderID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Save(ctx, aggregate); err != nil {
		return order.OrderID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.OrderID{}, err
	}

	return aggregate.ID(), nil
}
