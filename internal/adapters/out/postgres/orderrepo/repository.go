package orderrepo

import (
	"context"
	"errors"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking saved aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// orderedItems preloads item rows in their insertion order.
func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}

// FindByID retrieves an order with all its items.
// Returns (nil, nil) when no order with the given identifier exists.
func (r *GormOrderRepository) FindByID(ctx context.Context, id order.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items", orderedItems).First(&dto, "id = ?", id.UUID().Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindByCustomer retrieves every order of a customer, newest first.
// Returns an empty slice when the customer has no orders.
func (r *GormOrderRepository) FindByCustomer(ctx context.Context, customerID order.CustomerID) ([]*order.Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", orderedItems).
		Order("created_at DESC, id").
		Find(&dtos, "customer_id = ?", customerID.UUID().Bytes()).Error
	if err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

// FindStalePending retrieves pending orders created before the given moment,
// oldest first.
func (r *GormOrderRepository) FindStalePending(ctx context.Context, before time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", orderedItems).
		Order("created_at").
		Find(&dtos, "status = ? AND created_at < ?", order.Pending.String(), before).Error
	if err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

// Save persists the aggregate with an idempotent upsert. The order row is
// inserted or updated and the item rows are replaced wholesale so the stored
// item list always mirrors the aggregate.
func (r *GormOrderRepository) Save(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	err := db.Omit("Items").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
	if err != nil {
		return err
	}

	if err = db.Where("order_id = ?", dto.ID).Delete(&ItemDTO{}).Error; err != nil {
		return err
	}

	if len(dto.Items) > 0 {
		if err = db.Create(&dto.Items).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID().UUID(), aggregate)
	return nil
}

// Delete removes an order and its items. Deleting an unknown identifier is a
// no-op.
func (r *GormOrderRepository) Delete(ctx context.Context, id order.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)

	if err := db.Where("order_id = ?", id.UUID().Bytes()).Delete(&ItemDTO{}).Error; err != nil {
		return err
	}

	return db.Delete(&OrderDTO{}, "id = ?", id.UUID().Bytes()).Error
}

// NextID generates a fresh order identifier.
func (r *GormOrderRepository) NextID() order.OrderID {
	return order.NewOrderID()
}

func toDomainList(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}
