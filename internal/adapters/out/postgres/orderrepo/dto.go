// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. The order and its line items are stored in two tables
// and always written together as one aggregate.
package orderrepo

import (
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Totals are never stored; they are derived on demand from items and the
// current catalog state.
type OrderDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID       `gorm:"type:uuid;index"`
	Status       string          `gorm:"type:varchar(16);index"`
	DeliveryCost decimal.Decimal `gorm:"type:numeric(12,2)"`
	TaxPercent   decimal.Decimal `gorm:"type:numeric(5,2)"`
	CreatedAt    time.Time       `gorm:"index"`
	UpdatedAt    time.Time

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one order line. The composite primary key enforces
// at most one line per (order, product) pair; Position preserves insertion
// order for display.
type OrderItemDTO struct {
	OrderID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID       `gorm:"type:uuid;primaryKey;index"`
	Position  int
	Quantity  int
	Price     decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for position, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:   aggregate.ID().Bytes(),
			ProductID: item.ProductID().Bytes(),
			Position:  position,
			Quantity:  item.Quantity(),
			Price:     item.Price(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		Status:       aggregate.Status().String(),
		DeliveryCost: aggregate.DeliveryCost(),
		TaxPercent:   aggregate.TaxPercent(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
		Items:        items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, idErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if idErr != nil {
			return nil, idErr
		}

		item, itemErr := order.RestoreItem(productID, itemDTO.Quantity, itemDTO.Price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		customerID,
		status,
		dto.DeliveryCost,
		dto.TaxPercent,
		items,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
