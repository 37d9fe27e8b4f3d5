// Package productrepo provides data transfer objects and mapping functions
// for product persistence.
package productrepo

import (
	"sales/internal/core/domain/model/catalog"
	"sales/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting products.
type ProductDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"index"`
	Description     string
	Price           decimal.Decimal `gorm:"type:numeric(12,2)"`
	StockQuantity   int
	IsActive        bool            `gorm:"index"`
	DiscountPercent decimal.Decimal `gorm:"type:numeric(5,2)"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(product *catalog.Product) ProductDTO {
	return ProductDTO{
		ID:              product.ID().Bytes(),
		Name:            product.Name(),
		Description:     product.Description(),
		Price:           product.Price(),
		StockQuantity:   product.StockQuantity(),
		IsActive:        product.IsActive(),
		DiscountPercent: product.DiscountPercent(),
	}
}

func toDomain(dto ProductDTO) (*catalog.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return catalog.RestoreProduct(
		id,
		dto.Name,
		dto.Description,
		dto.Price,
		dto.StockQuantity,
		dto.IsActive,
		dto.DiscountPercent,
	)
}
