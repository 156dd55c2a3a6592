package queries

import (
	"context"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order read model from the
// database. Reads the orders and order_items tables directly without going
// through the aggregate.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns OrderNotFoundError when no order with
// the given identifier exists.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var header struct {
		ID         uuid.UUID
		CustomerID uuid.UUID
		Status     string
		CreatedAt  time.Time
	}

	result := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			status,
			created_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Scan(&header)
	if result.Error != nil {
		return GetOrderQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetOrderQueryResponse{}, order.NewOrderNotFoundError(query.OrderID().String())
	}

	orderID, err := kernel.UUIDFromBytes(header.ID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	customerID, err := kernel.UUIDFromBytes(header.CustomerID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	items, total, currency, err := loadOrderItems(ctx, h.db, header.ID)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return GetOrderQueryResponse{
		ID:            orderID,
		CustomerID:    customerID,
		Status:        header.Status,
		CreatedAt:     header.CreatedAt,
		Items:         items,
		TotalAmount:   total,
		TotalCurrency: currency,
	}, nil
}

// loadOrderItems reads every item of an order in insertion order and sums
// the subtotals. Returns the default currency when the order is empty.
func loadOrderItems(
	ctx context.Context,
	db *gorm.DB,
	orderID uuid.UUID,
) ([]OrderItemResponse, decimal.Decimal, string, error) {
	items := make([]OrderItemResponse, 0)
	total := decimal.Zero
	currency := kernel.DefaultCurrency

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			quantity,
			unit_price,
			currency
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, orderID.String()).Rows()
	if err != nil {
		return nil, decimal.Zero, "", err
	}
	defer rows.Close()

	for rows.Next() {
		var productID uuid.UUID
		var quantity int
		var unitPrice decimal.Decimal
		var itemCurrency string

		if err = rows.Scan(&productID, &quantity, &unitPrice, &itemCurrency); err != nil {
			return nil, decimal.Zero, "", err
		}

		productUUID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, decimal.Zero, "", idErr
		}

		items = append(items, OrderItemResponse{
			ProductID: productUUID,
			Quantity:  quantity,
			UnitPrice: unitPrice,
			Currency:  itemCurrency,
		})

		total = total.Add(unitPrice.Mul(decimal.NewFromInt(int64(quantity))))
		currency = itemCurrency
	}

	if err = rows.Err(); err != nil {
		return nil, decimal.Zero, "", err
	}

	return items, total, currency, nil
}
