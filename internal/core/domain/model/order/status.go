package order

import (
	"fmt"

	"shop/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Paid ──> Shipped ──> Delivered
//	   │            │           │
//	   └────────────┴───────────┴──> Cancelled
//
// Cancellation is allowed from every state except Shipped and Delivered.
// Status is a value object; its string form is the lowercase token persisted
// by the storage adapter ("pending", "confirmed", ...).
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned at creation. Items can only be
	// added to or removed from pending orders.
	Pending

	// Confirmed indicates the customer has confirmed the order. The item list
	// is frozen from this point on.
	Confirmed

	// Paid indicates payment for a confirmed order has been received.
	Paid

	// Shipped indicates the order has left the warehouse. Shipped orders can
	// no longer be cancelled.
	Shipped

	// Delivered indicates the order reached the customer. This is a final
	// state alongside Cancelled.
	Delivered

	// Cancelled indicates the order was cancelled before shipping.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Confirmed: "confirmed",
		Paid:      "paid",
		Shipped:   "shipped",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Confirmed: "confirmed",
		Paid:      "paid",
		Shipped:   "shipped",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// StatusFromString parses a persisted status token back into a Status.
// Returns an error for any token that is not one of the six valid statuses.
// Used by the storage adapter when rehydrating aggregates.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the six valid statuses.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase token of the status, implementing fmt.Stringer.
// Safe to call on any Status value; invalid values yield "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ValidateModify checks that the order's item list may still be changed.
// Only pending orders accept item mutations; any other status fails with
// OrderAlreadyConfirmedError.
func (s Status) ValidateModify() error {
	if s != Pending {
		return NewOrderAlreadyConfirmedError(s)
	}
	return nil
}

// Confirm transitions the status to Confirmed.
//
// Valid transitions:
//   - Pending -> Confirmed
//
// Any other source status fails with OrderAlreadyConfirmedError.
// The aggregate additionally requires a non-empty item list before calling
// this transition.
func (s Status) Confirm() (Status, error) {
	if s != Pending {
		return Unknown, NewOrderAlreadyConfirmedError(s)
	}
	return Confirmed, nil
}

// MarkAsPaid transitions the status to Paid.
//
// Valid transitions:
//   - Confirmed -> Paid
//
// Any other source status fails with OrderNotConfirmedError.
func (s Status) MarkAsPaid() (Status, error) {
	if s != Confirmed {
		return Unknown, NewOrderNotConfirmedError(s)
	}
	return Paid, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions: from every status except Shipped and Delivered.
// Shipped and delivered orders fail with OrderCannotBeCancelledError carrying
// the offending status.
func (s Status) Cancel() (Status, error) {
	if s == Shipped || s == Delivered {
		return Unknown, NewOrderCannotBeCancelledError(s)
	}
	return Cancelled, nil
}
