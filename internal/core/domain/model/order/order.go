package order

import (
	"errors"
	"fmt"
	"time"

	"shop/internal/core/domain/model/kernel"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are properly
// validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root of the order module. It owns its line items and
// enforces the lifecycle rules of the order state machine.
//
// Order follows these invariants:
//   - Must have valid order and customer identifiers
//   - Status transitions follow the rules defined on Status
//   - Items can only be changed while the order is pending
//   - All items share one currency, so the total is always computable
//   - The item collection is encapsulated: Items() returns a defensive copy
//     and all mutation goes through AddItem/RemoveItem
//
// There are two construction paths: NewOrder for fresh aggregates, and
// RestoreOrder for trusted rehydration from storage, which restores state
// without re-running transition rules.
type Order struct {
	// id is the unique identifier for the order
	id OrderID

	// customerID identifies the customer who placed the order
	customerID CustomerID

	// status represents the current state in the order lifecycle
	status Status

	// createdAt is the creation timestamp assigned by the factory
	createdAt time.Time

	// items is the encapsulated line-item collection
	items []Item

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order for the given customer: a fresh random id,
// Pending status, the current timestamp, and zero items.
//
// Returns an error if the customer id is not a properly constructed value
// object.
//
// Example:
//
//	customerID, _ := order.CustomerIDFromString("550e8400-e29b-41d4-a716-446655440000")
//	o, err := order.NewOrder(customerID)
//	if err != nil {
//	    // handle validation error
//	}
func NewOrder(customerID CustomerID) (*Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:            NewOrderID(),
		customerID:    customerID,
		status:        Pending,
		createdAt:     time.Now(),
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an Order from persisted state. This is the
// trusted rehydration path for storage adapters: it restores status and items
// without re-running business-rule transitions, since persisted data is
// assumed to have passed them already. Structurally invalid input (zero-value
// identifiers, unknown status, unconstructed items) is still rejected.
//
// Runtime code must never use this constructor to bypass the validated
// mutation API.
func RestoreOrder(
	id OrderID,
	customerID CustomerID,
	status Status,
	createdAt time.Time,
	items []Item,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	restored := &Order{
		id:            id,
		customerID:    customerID,
		status:        status,
		createdAt:     createdAt,
		items:         append([]Item(nil), items...),
		isConstructed: true,
	}

	return restored, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers. Orders are
// entities: two instances with the same id are the same order regardless of
// their other state.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() OrderID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() CustomerID {
	return o.customerID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp of the order.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Items returns a defensive copy of the order's line items. Callers can never
// mutate aggregate state through the returned slice.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// ItemCount returns the number of lines in the order.
func (o *Order) ItemCount() int {
	return len(o.items)
}

// AddItem appends a new validated line to a pending order.
//
// Business rules:
//   - The order must be pending (OrderAlreadyConfirmedError otherwise)
//   - Quantity must be positive (InvalidQuantityError otherwise)
//   - The unit price currency must match the order's existing items
//     (CurrencyMismatchError otherwise), keeping the total computable
func (o *Order) AddItem(productID ProductID, quantity int, unitPrice kernel.Money) error {
	if err := o.status.ValidateModify(); err != nil {
		return err
	}

	item, err := NewItem(productID, quantity, unitPrice)
	if err != nil {
		return err
	}

	if len(o.items) > 0 {
		if current := o.items[0].UnitPrice().Currency(); current != unitPrice.Currency() {
			return kernel.NewCurrencyMismatchError(current, unitPrice.Currency())
		}
	}

	o.items = append(o.items, item)
	return nil
}

// RemoveItem removes every line matching the given product id from a pending
// order. Removing a product that is not in the order is a no-op.
//
// Fails with OrderAlreadyConfirmedError if the order is no longer pending.
func (o *Order) RemoveItem(productID ProductID) error {
	if err := o.status.ValidateModify(); err != nil {
		return err
	}
	if err := productID.Validate(); err != nil {
		return err
	}

	kept := o.items[:0]
	for _, item := range o.items {
		if !item.ProductID().IsEqual(productID) {
			kept = append(kept, item)
		}
	}
	o.items = kept

	return nil
}

// Confirm transitions a pending order with at least one item to Confirmed.
//
// Fails with OrderAlreadyConfirmedError if the order is not pending, and with
// EmptyOrderError if it has no items; the status is left unchanged in both
// cases.
func (o *Order) Confirm() error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	if len(o.items) == 0 {
		return NewEmptyOrderError(o.id)
	}

	o.status = newStatus
	return nil
}

// Cancel transitions the order to Cancelled.
//
// Allowed from every status except Shipped and Delivered; those fail with
// OrderCannotBeCancelledError carrying the offending status.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkAsPaid transitions a confirmed order to Paid.
//
// Fails with OrderNotConfirmedError for any other source status.
func (o *Order) MarkAsPaid() error {
	newStatus, err := o.status.MarkAsPaid()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Total sums the subtotals of all items in the currency of the first item.
// An order without items yields a zero amount in the default currency.
// Total never fails: AddItem keeps every item in a single currency.
func (o *Order) Total() kernel.Money {
	if len(o.items) == 0 {
		return kernel.ZeroMoney(kernel.DefaultCurrency)
	}

	total := kernel.ZeroMoney(o.items[0].UnitPrice().Currency())
	for _, item := range o.items {
		sum, err := total.Add(item.Subtotal())
		if err != nil {
			// unreachable: AddItem enforces a single currency per order
			continue
		}
		total = sum
	}

	return total
}

// String returns a developer-readable form for diagnostics.
func (o *Order) String() string {
	return fmt.Sprintf("Order(id=%s, customer=%s, status=%s, items=%d)",
		o.id, o.customerID, o.status, len(o.items))
}
