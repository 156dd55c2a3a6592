package ports

import (
	"context"
	"time"

	"shop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// This is the seam between the domain core and storage: the core operates
// against this interface alone, with no knowledge of how persistence is
// implemented.
//
// Adapters must eager-load the full item list of every returned aggregate so
// Total and Items are always complete; partial loads are not supported.
// Adapters are also responsible for concurrency control: concurrent Save
// calls against the same order id must not corrupt state.
type OrderRepository interface {
	// FindByID retrieves an order aggregate by its unique identifier.
	// Returns (nil, nil) when no order with that id exists; callers decide
	// whether absence is an error.
	FindByID(ctx context.Context, id order.OrderID) (*order.Order, error)

	// FindByCustomer retrieves all orders placed by the given customer.
	FindByCustomer(ctx context.Context, customerID order.CustomerID) ([]*order.Order, error)

	// FindStalePending retrieves pending orders created before the given
	// instant. Used by the stale-order cancellation job.
	FindStalePending(ctx context.Context, before time.Time) ([]*order.Order, error)

	// Save persists the aggregate as an idempotent upsert: the adapter
	// decides insert vs. update and stores the complete item list.
	Save(ctx context.Context, aggregate *order.Order) error

	// Delete removes the aggregate and its items from storage.
	// Deleting an unknown id is a no-op.
	Delete(ctx context.Context, id order.OrderID) error

	// NextID generates a fresh order identifier.
	NextID() order.OrderID
}
