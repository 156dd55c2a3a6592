package order

import (
	"errors"
	"fmt"

	"shop/internal/core/domain/model/kernel"
)

// Item is a single validated line of an order: a product reference, a
// positive quantity, and the unit price at the time the line was added.
//
// Items have no existence outside their owning Order; they are created,
// replaced, and removed exclusively through the aggregate. An Item is
// immutable once constructed.
type Item struct {
	productID ProductID
	quantity  int
	unitPrice kernel.Money

	guard kernel.ConstructorGuard
}

// ErrItemIsNotConstructed indicates that an Item was not created through
// the NewItem constructor.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem")

// NewItem creates a validated order line.
//
// The quantity must be positive; zero or negative quantities fail with
// InvalidQuantityError. The product id and unit price must be properly
// constructed value objects.
func NewItem(productID ProductID, quantity int, unitPrice kernel.Money) (Item, error) {
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}
	if quantity <= 0 {
		return Item{}, NewInvalidQuantityError(quantity)
	}
	if err := unitPrice.Validate(); err != nil {
		return Item{}, err
	}

	return Item{
		productID: productID,
		quantity:  quantity,
		unitPrice: unitPrice,
		guard:     kernel.NewConstructorGuard(),
	}, nil
}

// ProductID returns the catalog product this line refers to.
func (i Item) ProductID() ProductID {
	return i.productID
}

// Quantity returns the ordered quantity. Always positive.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price per unit captured when the line was added.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Subtotal returns unit price multiplied by quantity, preserving the
// currency of the unit price.
func (i Item) Subtotal() kernel.Money {
	return i.unitPrice.MultiplyInt(int64(i.quantity))
}

// String returns a developer-readable form for diagnostics.
func (i Item) String() string {
	return fmt.Sprintf("Item(product=%s, quantity=%d, unitPrice=%s)",
		i.productID, i.quantity, i.unitPrice)
}

// Validate checks that the Item was properly constructed.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}
