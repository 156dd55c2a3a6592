package order

import (
	"errors"
	"fmt"
)

// Sentinel errors for the order domain. All of them signal business-rule
// violations: they are non-retriable and indicate invalid caller usage, never
// transient infrastructure failures. Use errors.Is against the sentinels;
// the concrete types below carry diagnostic detail.
var (
	ErrInvalidQuantity        = errors.New("quantity must be greater than zero")
	ErrOrderAlreadyConfirmed  = errors.New("order is no longer pending")
	ErrOrderNotConfirmed      = errors.New("order is not confirmed")
	ErrEmptyOrder             = errors.New("cannot confirm an empty order")
	ErrOrderCannotBeCancelled = errors.New("order cannot be cancelled")
	ErrOrderNotFound          = errors.New("order not found")
)

// InvalidQuantityError reports a non-positive quantity supplied to AddItem or
// item construction.
type InvalidQuantityError struct {
	Quantity int
}

// NewInvalidQuantityError creates an InvalidQuantityError for the offending
// quantity.
func NewInvalidQuantityError(quantity int) *InvalidQuantityError {
	return &InvalidQuantityError{Quantity: quantity}
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("%s: %d", ErrInvalidQuantity, e.Quantity)
}

func (e *InvalidQuantityError) Unwrap() error {
	return ErrInvalidQuantity
}

// OrderAlreadyConfirmedError reports a mutation attempted on an order that has
// left the pending state. It carries the current status for diagnostics.
type OrderAlreadyConfirmedError struct {
	Status Status
}

// NewOrderAlreadyConfirmedError creates an OrderAlreadyConfirmedError carrying
// the order's current status.
func NewOrderAlreadyConfirmedError(status Status) *OrderAlreadyConfirmedError {
	return &OrderAlreadyConfirmedError{Status: status}
}

func (e *OrderAlreadyConfirmedError) Error() string {
	return fmt.Sprintf("%s: status is %s", ErrOrderAlreadyConfirmed, e.Status)
}

func (e *OrderAlreadyConfirmedError) Unwrap() error {
	return ErrOrderAlreadyConfirmed
}

// OrderNotConfirmedError reports a payment transition attempted on an order
// that is not in the confirmed state.
type OrderNotConfirmedError struct {
	Status Status
}

// NewOrderNotConfirmedError creates an OrderNotConfirmedError carrying the
// order's current status.
func NewOrderNotConfirmedError(status Status) *OrderNotConfirmedError {
	return &OrderNotConfirmedError{Status: status}
}

func (e *OrderNotConfirmedError) Error() string {
	return fmt.Sprintf("%s: status is %s", ErrOrderNotConfirmed, e.Status)
}

func (e *OrderNotConfirmedError) Unwrap() error {
	return ErrOrderNotConfirmed
}

// EmptyOrderError reports an attempt to confirm an order with no items.
type EmptyOrderError struct {
	OrderID OrderID
}

// NewEmptyOrderError creates an EmptyOrderError for the offending order.
func NewEmptyOrderError(id OrderID) *EmptyOrderError {
	return &EmptyOrderError{OrderID: id}
}

func (e *EmptyOrderError) Error() string {
	return fmt.Sprintf("%s: order %s", ErrEmptyOrder, e.OrderID)
}

func (e *EmptyOrderError) Unwrap() error {
	return ErrEmptyOrder
}

// OrderCannotBeCancelledError reports a cancellation attempted on a shipped or
// delivered order. It carries the offending status for diagnostics.
type OrderCannotBeCancelledError struct {
	Status Status
}

// NewOrderCannotBeCancelledError creates an OrderCannotBeCancelledError
// carrying the order's current status.
func NewOrderCannotBeCancelledError(status Status) *OrderCannotBeCancelledError {
	return &OrderCannotBeCancelledError{Status: status}
}

func (e *OrderCannotBeCancelledError) Error() string {
	return fmt.Sprintf("%s: status is %s", ErrOrderCannotBeCancelled, e.Status)
}

func (e *OrderCannotBeCancelledError) Unwrap() error {
	return ErrOrderCannotBeCancelled
}

// OrderNotFoundError is raised by use cases (not the aggregate) when a
// repository lookup misses.
type OrderNotFoundError struct {
	ID string
}

// NewOrderNotFoundError creates an OrderNotFoundError for the missing
// order id.
func NewOrderNotFoundError(id string) *OrderNotFoundError {
	return &OrderNotFoundError{ID: id}
}

func (e *OrderNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrOrderNotFound, e.ID)
}

func (e *OrderNotFoundError) Unwrap() error {
	return ErrOrderNotFound
}
