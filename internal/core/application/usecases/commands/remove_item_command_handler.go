package commands

import (
	"context"

	"shop/internal/core/domain/model/order"
)

// RemoveItemCommandHandler handles removing product lines from pending
// orders.
type RemoveItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveItemCommandHandler creates a handler for removing order items.
func NewRemoveItemCommandHandler(uowFactory OrderUoWFactory) RemoveItemCommandHandler {
	return RemoveItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order and removes every line matching the product.
// Succeeds even when the product is not present in the order.
func (h *RemoveItemCommandHandler) Handle(ctx context.Context, cmd RemoveItemCommand) error {
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

	if err = aggregate.RemoveItem(cmd.ProductID()); err != nil {
		return err
	}

	if err = repository.Save(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
