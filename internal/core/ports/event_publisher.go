package ports

import (
	"context"

	"shop/internal/core/domain/model/order"
)

// OrderEventPublisher notifies external systems about order lifecycle
// transitions. Publishing happens after the transaction commits and is
// best-effort: command handlers log failures instead of surfacing them,
// so a broker outage never fails a business operation.
type OrderEventPublisher interface {
	// PublishOrderConfirmed announces that an order was confirmed.
	PublishOrderConfirmed(ctx context.Context, aggregate *order.Order) error

	// PublishOrderPaid announces that a confirmed order was paid.
	PublishOrderPaid(ctx context.Context, aggregate *order.Order) error

	// PublishOrderCancelled announces that an order was cancelled.
	PublishOrderCancelled(ctx context.Context, aggregate *order.Order) error
}
