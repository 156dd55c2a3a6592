package http

import "time"

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerID string `json:"customer_id"`
}

// CreateOrderResponse carries the identifier of a newly opened order.
type CreateOrderResponse struct {
	OrderID string `json:"order_id"`
}

// AddItemRequest is the body of POST /api/v1/orders/:orderId/items.
// UnitPrice is a decimal string to avoid floating point loss.
type AddItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Currency  string `json:"currency"`
}

// OrderItemResponse represents one product line of an order.
type OrderItemResponse struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Currency  string `json:"currency"`
}

// OrderResponse represents a full order with items and total.
type OrderResponse struct {
	ID            string              `json:"id"`
	CustomerID    string              `json:"customer_id"`
	Status        string              `json:"status"`
	CreatedAt     time.Time           `json:"created_at"`
	Items         []OrderItemResponse `json:"items"`
	TotalAmount   string              `json:"total_amount"`
	TotalCurrency string              `json:"total_currency"`
}
