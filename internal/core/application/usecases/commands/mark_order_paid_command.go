package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
)

// ErrMarkOrderPaidCommandIsNotConstructed is returned when a
// MarkOrderPaidCommand was not created via its constructor.
var ErrMarkOrderPaidCommandIsNotConstructed = errors.New(
	"MarkOrderPaidCommand must be created via NewMarkOrderPaidCommand constructor",
)

// MarkOrderPaidCommand represents a request to record payment for a
// confirmed order.
type MarkOrderPaidCommand struct { //nolint:recvcheck //using for validation
	orderID order.OrderID

	guard kernel.ConstructorGuard
}

// NewMarkOrderPaidCommand creates a command to mark an order as paid.
func NewMarkOrderPaidCommand(orderID order.OrderID) (MarkOrderPaidCommand, error) {
	orderCommand := MarkOrderPaidCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := orderCommand.setOrderID(orderID); err != nil {
		return MarkOrderPaidCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderPaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderPaidCommandIsNotConstructed)
}

// OrderID returns the order being paid.
func (c MarkOrderPaidCommand) OrderID() order.OrderID {
	return c.orderID
}

func (c *MarkOrderPaidCommand) setOrderID(orderID order.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
