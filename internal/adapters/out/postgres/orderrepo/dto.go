// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database
// rows.
package orderrepo

import (
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Items live in a child table and are loaded together with the
// order row.
type OrderDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;index"`
	Status     string    `gorm:"type:varchar(16);index"`
	CreatedAt  time.Time
	Items      []ItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order rows.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one product line of an order. Rows use a surrogate key:
// the same product may appear on several lines, so (order_id, product_id) is
// not unique. Position preserves the insertion order of the lines.
type ItemDTO struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID       `gorm:"type:uuid;index"`
	ProductID uuid.UUID       `gorm:"type:uuid"`
	Position  int             `gorm:"not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(10,2)"`
	Currency  string          `gorm:"type:varchar(3)"`
}

// TableName specifies the database table name for order item rows.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	domainItems := aggregate.Items()
	items := make([]ItemDTO, 0, len(domainItems))
	for position, item := range domainItems {
		items = append(items, ItemDTO{
			OrderID:   aggregate.ID().UUID().Bytes(),
			ProductID: item.ProductID().UUID().Bytes(),
			Position:  position,
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Amount(),
			Currency:  item.UnitPrice().Currency(),
		})
	}

	return OrderDTO{
		ID:         aggregate.ID().UUID().Bytes(),
		CustomerID: aggregate.CustomerID().UUID().Bytes(),
		Status:     aggregate.Status().String(),
		CreatedAt:  aggregate.CreatedAt(),
		Items:      items,
	}
}

// toDomain converts a database row to an order aggregate.
// Reconstructs the aggregate, including status and items, using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	orderUUID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerUUID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	orderID, err := order.OrderIDFrom(orderUUID)
	if err != nil {
		return nil, err
	}

	customerID, err := order.CustomerIDFrom(customerUUID)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := toDomainItem(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(orderID, customerID, status, dto.CreatedAt, items)
}

func toDomainItem(dto ItemDTO) (order.Item, error) {
	productUUID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.Item{}, err
	}

	productID, err := order.ProductIDFrom(productUUID)
	if err != nil {
		return order.Item{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice, dto.Currency)
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(productID, dto.Quantity, unitPrice)
}
