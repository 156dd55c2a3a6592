package commands

import (
	"context"

	"shop/internal/core/domain/model/order"
)

// AddItemCommandHandler handles adding product lines to pending orders.
type AddItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddItemCommandHandler creates a handler for adding order items.
func NewAddItemCommandHandler(uowFactory OrderUoWFactory) AddItemCommandHandler {
	return AddItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, delegates the business rules to the aggregate and
// persists the result. Returns OrderNotFoundError when the order does not
// exist and the aggregate's errors when the order is no longer pending or
// the item data is rejected.
func (h *AddItemCommandHandler) Handle(ctx context.Context, cmd AddItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repository := uow.OrderRepository()

	aggregate, err := repository.FindByID(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if aggregate == nil {
		return order.NewOrderNotFoundError(cmd.OrderID().String())
	}

	if err = aggregate.AddItem(cmd.ProductID(), cmd.Quantity(), cmd.UnitPrice()); err != nil {
		return err
	}

	if err = repository.Save(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
