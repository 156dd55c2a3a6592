package commands

import (
	"context"
	"log/slog"
	"time"

	"shop/internal/core/ports"
)

// CancelStaleOrdersCommandHandler cancels pending orders that were never
// confirmed. Run periodically by the job scheduler.
type CancelStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewCancelStaleOrdersCommandHandler creates a handler for the stale order
// sweep. The publisher may be nil, in which case no events are emitted.
func NewCancelStaleOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CancelStaleOrdersCommandHandler {
	return CancelStaleOrdersCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle cancels every pending order created before now minus the command's
// age threshold. All cancellations happen in one transaction; events are
// published after commit. Returns the number of cancelled orders.
func (h *CancelStaleOrdersCommandHandler) Handle(ctx context.Context, cmd CancelStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repository := uow.OrderRepository()

	cutoff := time.Now().UTC().Add(-cmd.OlderThan())

	staleOrders, err := repository.FindStalePending(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	for _, aggregate := range staleOrders {
		if err = aggregate.Cancel(); err != nil {
			return 0, err
		}

		if err = repository.Save(ctx, aggregate); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	if h.publisher != nil {
		for _, aggregate := range staleOrders {
			if err = h.publisher.PublishOrderCancelled(ctx, aggregate); err != nil {
				h.logger.WarnContext(ctx, "failed to publish order cancelled event",
					"order_id", aggregate.ID().String(), "error", err)
			}
		}
	}

	return len(staleOrders), nil
}
