package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
)

// ErrAddItemCommandIsNotConstructed is returned when an AddItemCommand was
// not created via its constructor.
var ErrAddItemCommandIsNotConstructed = errors.New(
	"AddItemCommand must be created via NewAddItemCommand constructor",
)

// AddItemCommand represents a request to add a product line to a pending
// order. Quantity and unit price are validated by the aggregate; the command
// only guarantees the value objects are properly constructed.
type AddItemCommand struct { //nolint:recvcheck //using for validation
	orderID   order.OrderID
	productID order.ProductID
	quantity  int
	unitPrice kernel.Money

	guard kernel.ConstructorGuard
}

// NewAddItemCommand creates a command to add an item to an order.
func NewAddItemCommand(
	orderID order.OrderID,
	productID order.ProductID,
	quantity int,
	unitPrice kernel.Money,
) (AddItemCommand, error) {
	itemCommand := AddItemCommand{
		quantity: quantity,
		guard:    kernel.NewConstructorGuard(),
	}

	err := errors.Join(
		itemCommand.setOrderID(orderID),
		itemCommand.setProductID(productID),
		itemCommand.setUnitPrice(unitPrice),
	)
	if err != nil {
		return AddItemCommand{}, err
	}

	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}

// OrderID returns the order the item is added to.
func (c AddItemCommand) OrderID() order.OrderID {
	return c.orderID
}

// ProductID returns the product being added.
func (c AddItemCommand) ProductID() order.ProductID {
	return c.productID
}

// Quantity returns the number of units requested.
func (c AddItemCommand) Quantity() int {
	return c.quantity
}

// UnitPrice returns the price of a single unit.
func (c AddItemCommand) UnitPrice() kernel.Money {
	return c.unitPrice
}

func (c *AddItemCommand) setOrderID(orderID order.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddItemCommand) setProductID(productID order.ProductID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AddItemCommand) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}

	c.unitPrice = unitPrice
	return nil
}
