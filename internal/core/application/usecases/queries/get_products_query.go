package queries

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetProductsQueryIsNotConstructed = errors.New(
		"GetProductsQuery must be created via NewGetProductsQuery constructor",
	)
	ErrPriceRangeIsInvalid = errors.New("min price must not exceed max price")
)

// GetProductsQuery retrieves catalog products with optional filters on the
// active flag, a name substring, and a price range.
type GetProductsQuery struct {
	isActive     *bool
	nameContains *string
	minPrice     *decimal.Decimal
	maxPrice     *decimal.Decimal

	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates a query to retrieve products.
// All filters are optional; pass nil for no constraint. When both price
// bounds are present, min must not exceed max.
func NewGetProductsQuery(
	isActive *bool,
	nameContains *string,
	minPrice *decimal.Decimal,
	maxPrice *decimal.Decimal,
) (GetProductsQuery, error) {
	if minPrice != nil && maxPrice != nil && minPrice.GreaterThan(*maxPrice) {
		return GetProductsQuery{}, ErrPriceRangeIsInvalid
	}

	return GetProductsQuery{
		isActive:     isActive,
		nameContains: nameContains,
		minPrice:     minPrice,
		maxPrice:     maxPrice,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// IsActive returns the active-flag filter, nil when unfiltered.
func (q GetProductsQuery) IsActive() *bool {
	return q.isActive
}

// NameContains returns the name substring filter, nil when unfiltered.
func (q GetProductsQuery) NameContains() *string {
	return q.nameContains
}

// MinPrice returns the lower price bound, nil when unbounded.
func (q GetProductsQuery) MinPrice() *decimal.Decimal {
	return q.minPrice
}

// MaxPrice returns the upper price bound, nil when unbounded.
func (q GetProductsQuery) MaxPrice() *decimal.Decimal {
	return q.maxPrice
}

// GetProductsQueryResponse represents one product in the read model.
type GetProductsQueryResponse struct {
	ID              kernel.UUID
	Name            string
	Description     string
	Price           decimal.Decimal
	StockQuantity   int
	IsActive        bool
	DiscountPercent decimal.Decimal
}
