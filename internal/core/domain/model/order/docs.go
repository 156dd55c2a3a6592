// Package order provides the Order aggregate root of the shop domain,
// together with its typed identifiers, line items, status state machine,
// and domain errors.
//
// The package includes:
//   - Order: The aggregate root that owns line items and enforces lifecycle rules
//   - Item: A validated order line (product, quantity, unit price)
//   - Status: A state machine that enforces valid order status transitions
//   - OrderID, CustomerID, ProductID: typed identifier value objects
//
// Key business rules:
//   - Items can only be added to or removed from pending orders
//   - Item quantity must be positive
//   - Only non-empty pending orders can be confirmed
//   - Shipped and delivered orders cannot be cancelled
//   - All items of an order share one currency, so the total is always computable
//
// Order and Item are entities compared by identity; the identifier types and
// Status are value objects compared by content. The item collection is
// encapsulated: reads return a defensive copy and all mutation goes through
// aggregate methods.
package order
