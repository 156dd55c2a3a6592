package queries

import (
	"context"
	"time"

	"shop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler lists all orders of a customer, newest
// first. Each order is returned as a full read model with items and total.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer order
// listings. Requires a GORM database connection for query execution.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle executes the query. Returns an empty slice when the customer has no
// orders.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	type orderRow struct {
		ID         uuid.UUID
		CustomerID uuid.UUID
		Status     string
		CreatedAt  time.Time
	}

	headers := make([]orderRow, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			status,
			created_at
		FROM orders
		WHERE customer_id = ?
		ORDER BY created_at DESC, id
	`, query.CustomerID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row orderRow
		if err = rows.Scan(&row.ID, &row.CustomerID, &row.Status, &row.CreatedAt); err != nil {
			return nil, err
		}
		headers = append(headers, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	orders := make([]GetOrderQueryResponse, 0, len(headers))

	for _, header := range headers {
		orderID, idErr := kernel.UUIDFromBytes(header.ID[:])
		if idErr != nil {
			return nil, idErr
		}

		customerID, idErr := kernel.UUIDFromBytes(header.CustomerID[:])
		if idErr != nil {
			return nil, idErr
		}

		items, total, currency, itemsErr := loadOrderItems(ctx, h.db, header.ID)
		if itemsErr != nil {
			return nil, itemsErr
		}

		orders = append(orders, GetOrderQueryResponse{
			ID:            orderID,
			CustomerID:    customerID,
			Status:        header.Status,
			CreatedAt:     header.CreatedAt,
			Items:         items,
			TotalAmount:   total,
			TotalCurrency: currency,
		})
	}

	return orders, nil
}
