package order

import (
	"shop/internal/core/domain/model/kernel"
)

// OrderID is the typed identifier of an Order aggregate.
// It is a value object compared by wrapped value; the zero value is invalid.
type OrderID struct {
	id kernel.UUID
}

// NewOrderID generates a fresh random OrderID.
func NewOrderID() OrderID {
	return OrderID{id: kernel.NewUUID()}
}

// OrderIDFrom wraps an existing UUID as an OrderID.
func OrderIDFrom(id kernel.UUID) (OrderID, error) {
	if err := id.Validate(); err != nil {
		return OrderID{}, err
	}
	return OrderID{id: id}, nil
}

// OrderIDFromString parses an OrderID from its string representation.
// Used by boundary code translating request parameters into domain values.
func OrderIDFromString(s string) (OrderID, error) {
	id, err := kernel.UUIDFromString(s)
	if err != nil {
		return OrderID{}, err
	}
	return OrderID{id: id}, nil
}

// UUID returns the wrapped identifier value.
func (i OrderID) UUID() kernel.UUID {
	return i.id
}

// String returns the canonical string form of the identifier.
func (i OrderID) String() string {
	return i.id.String()
}

// IsEqual compares two OrderIDs by value.
func (i OrderID) IsEqual(other OrderID) bool {
	return i.id.IsEqual(other.id)
}

// Validate checks that the identifier was properly constructed.
func (i OrderID) Validate() error {
	return i.id.Validate()
}

// CustomerID is the typed identifier of the customer who placed an order.
// It is a value object compared by wrapped value; the zero value is invalid.
type CustomerID struct {
	id kernel.UUID
}

// CustomerIDFrom wraps an existing UUID as a CustomerID.
func CustomerIDFrom(id kernel.UUID) (CustomerID, error) {
	if err := id.Validate(); err != nil {
		return CustomerID{}, err
	}
	return CustomerID{id: id}, nil
}

// CustomerIDFromString parses a CustomerID from its string representation.
func CustomerIDFromString(s string) (CustomerID, error) {
	id, err := kernel.UUIDFromString(s)
	if err != nil {
		return CustomerID{}, err
	}
	return CustomerID{id: id}, nil
}

// UUID returns the wrapped identifier value.
func (i CustomerID) UUID() kernel.UUID {
	return i.id
}

// String returns the canonical string form of the identifier.
func (i CustomerID) String() string {
	return i.id.String()
}

// IsEqual compares two CustomerIDs by value.
func (i CustomerID) IsEqual(other CustomerID) bool {
	return i.id.IsEqual(other.id)
}

// Validate checks that the identifier was properly constructed.
func (i CustomerID) Validate() error {
	return i.id.Validate()
}

// ProductID is the typed identifier of the catalog product an order line
// refers to. The catalog itself lives outside this module; the order
// aggregate only carries the reference.
type ProductID struct {
	id kernel.UUID
}

// ProductIDFrom wraps an existing UUID as a ProductID.
func ProductIDFrom(id kernel.UUID) (ProductID, error) {
	if err := id.Validate(); err != nil {
		return ProductID{}, err
	}
	return ProductID{id: id}, nil
}

// ProductIDFromString parses a ProductID from its string representation.
func ProductIDFromString(s string) (ProductID, error) {
	id, err := kernel.UUIDFromString(s)
	if err != nil {
		return ProductID{}, err
	}
	return ProductID{id: id}, nil
}

// UUID returns the wrapped identifier value.
func (i ProductID) UUID() kernel.UUID {
	return i.id
}

// String returns the canonical string form of the identifier.
func (i ProductID) String() string {
	return i.id.String()
}

// IsEqual compares two ProductIDs by value.
func (i ProductID) IsEqual(other ProductID) bool {
	return i.id.IsEqual(other.id)
}

// Validate checks that the identifier was properly constructed.
func (i ProductID) Validate() error {
	return i.id.Validate()
}
