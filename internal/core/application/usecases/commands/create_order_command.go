package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
)

// ErrCreateOrderCommandIsNotConstructed is returned when a CreateOrderCommand
// was not created via its constructor.
var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to open a new order for a customer.
//
// Example:
//
//	customerID, _ := order.CustomerIDFromString(req.CustomerID)
//	cmd, err := NewCreateOrderCommand(customerID)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID order.CustomerID

	guard kernel.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new order.
// Validates that the customer id is a properly constructed value object.
func NewCreateOrderCommand(customerID order.CustomerID) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := orderCommand.setCustomerID(customerID); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the customer the order is opened for.
func (c CreateOrderCommand) CustomerID() order.CustomerID {
	return c.customerID
}

func (c *CreateOrderCommand) setCustomerID(customerID order.CustomerID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}
