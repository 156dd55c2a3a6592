package commands

import (
	"context"
	"log/slog"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"
)

// MarkOrderPaidCommandHandler handles the confirmed to paid transition.
// Publishes an OrderPaid event after the transaction commits.
type MarkOrderPaidCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewMarkOrderPaidCommandHandler creates a handler for payment recording.
// The publisher may be nil, in which case no event is emitted.
func NewMarkOrderPaidCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) MarkOrderPaidCommandHandler {
	return MarkOrderPaidCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle marks the order as paid. Fails with OrderNotConfirmedError when the
// order has not been confirmed yet.
func (h *MarkOrderPaidCommandHandler) Handle(ctx context.Context, cmd MarkOrderPaidCommand) error {
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

	if err = aggregate.MarkAsPaid(); err != nil {
		return err
	}

	if err = repository.Save(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if h.publisher != nil {
		if err = h.publisher.PublishOrderPaid(ctx, aggregate); err != nil {
			h.logger.WarnContext(ctx, "failed to publish order paid event",
				"order_id", aggregate.ID().String(), "error", err)
		}
	}

	return nil
}
