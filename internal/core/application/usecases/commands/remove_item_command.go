package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
)

// ErrRemoveItemCommandIsNotConstructed is returned when a RemoveItemCommand
// was not created via its constructor.
var ErrRemoveItemCommandIsNotConstructed = errors.New(
	"RemoveItemCommand must be created via NewRemoveItemCommand constructor",
)

// RemoveItemCommand represents a request to remove a product line from a
// pending order. Removing a product the order does not contain is a no-op.
type RemoveItemCommand struct { //nolint:recvcheck //using for validation
	orderID   order.OrderID
	productID order.ProductID

	guard kernel.ConstructorGuard
}

// NewRemoveItemCommand creates a command to remove an item from an order.
func NewRemoveItemCommand(orderID order.OrderID, productID order.ProductID) (RemoveItemCommand, error) {
	itemCommand := RemoveItemCommand{
		guard: kernel.NewConstructorGuard(),
	}

	err := errors.Join(
		itemCommand.setOrderID(orderID),
		itemCommand.setProductID(productID),
	)
	if err != nil {
		return RemoveItemCommand{}, err
	}

	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveItemCommandIsNotConstructed)
}

// OrderID returns the order the item is removed from.
func (c RemoveItemCommand) OrderID() order.OrderID {
	return c.orderID
}

// ProductID returns the product being removed.
func (c RemoveItemCommand) ProductID() order.ProductID {
	return c.productID
}

func (c *RemoveItemCommand) setOrderID(orderID order.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RemoveItemCommand) setProductID(productID order.ProductID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
