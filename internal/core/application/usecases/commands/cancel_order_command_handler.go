package commands

import (
	"context"
	"log/slog"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"
)

// CancelOrderCommandHandler handles order cancellation.
// Publishes an OrderCancelled event after the transaction commits.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
// The publisher may be nil, in which case no event is emitted.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle cancels the order. Fails with OrderCannotBeCancelledError when the
// order was already shipped or delivered.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if err = aggregate.Cancel(); err != nil {
		return err
	}

	if err = repository.Save(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.publisher != nil {
		if err = h.publisher.PublishOrderCancelled(ctx, aggregate); err != nil {
			h.logger.WarnContext(ctx, "failed to publish order cancelled event",
				"order_id", aggregate.ID().String(), "error", err)
		}
	}

	return nil
}
