package commands

import (
	"context"
	"log/slog"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"
)

// ConfirmOrderCommandHandler handles the pending to confirmed transition.
// Publishes an OrderConfirmed event after the transaction commits.
type ConfirmOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewConfirmOrderCommandHandler creates a handler for order confirmation.
// The publisher may be nil, in which case no event is emitted.
func NewConfirmOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle confirms the order. Fails with EmptyOrderError when the order has
// no items and OrderAlreadyConfirmedError when it is not pending.
func (h *ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
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

	if err = aggregate.Confirm(); err != nil {
		return err
	}

	if err = repository.Save(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.publisher != nil {
		if err = h.publisher.PublishOrderConfirmed(ctx, aggregate); err != nil {
			h.logger.WarnContext(ctx, "failed to publish order confirmed event",
				"order_id", aggregate.ID().String(), "error", err)
		}
	}

	return nil
}
