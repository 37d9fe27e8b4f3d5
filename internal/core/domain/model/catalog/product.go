package catalog

import (
	"errors"
	"fmt"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

	// ErrInsufficientStock indicates that a stock decrement requested more
	// units than the product currently has.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InsufficientStockError is returned when an order confirmation tries to take
// more units of a product than are left in stock. No stock is mutated when
// this error is returned.
type InsufficientStockError struct {
	ProductID kernel.UUID
	Requested int
	Available int
}

// NewInsufficientStockError creates an InsufficientStockError for the given product.
func NewInsufficientStockError(productID kernel.UUID, requested int, available int) *InsufficientStockError {
	return &InsufficientStockError{ProductID: productID, Requested: requested, Available: available}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: product %s: requested %d, available %d",
		ErrInsufficientStock, e.ProductID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// Product represents a catalog item that can be ordered.
//
// Invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Price is never negative, stock quantity is never negative
//   - Product discount percent stays within [0, 100]
//   - A product with zero stock must not be active; this is checked at
//     construction and update time, not continuously (a confirmation that
//     drains the stock to zero does not deactivate the product by itself)
//
// A product referenced by order items cannot be deleted (enforced by the
// persistence layer). Order items freeze the product price at the moment they
// are created, so later price changes never affect existing items.
type Product struct {
	id              kernel.UUID
	name            string
	description     string
	price           decimal.Decimal
	stockQuantity   int
	isActive        bool
	discountPercent decimal.Decimal

	isConstructed bool
}

// NewProduct creates a new Product with validation.
func NewProduct(
	id kernel.UUID,
	name string,
	description string,
	price decimal.Decimal,
	stockQuantity int,
	isActive bool,
	discountPercent decimal.Decimal,
) (*Product, error) {
	product := &Product{
		description:   description,
		isConstructed: true,
	}

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setPrice(price),
		product.setStockQuantity(stockQuantity),
		product.setDiscountPercent(discountPercent),
	); err != nil {
		return nil, err
	}

	if err := product.setActive(isActive); err != nil {
		return nil, err
	}

	return product, nil
}

// RestoreProduct reconstructs a Product from persistence.
// Unlike NewProduct it does not re-check the zero-stock/active invariant:
// that rule is a write-time guard, and stored rows may legitimately hold an
// active product whose stock was drained to zero by a confirmation.
func RestoreProduct(
	id kernel.UUID,
	name string,
	description string,
	price decimal.Decimal,
	stockQuantity int,
	isActive bool,
	discountPercent decimal.Decimal,
) (*Product, error) {
	product := &Product{
		description:   description,
		isActive:      isActive,
		isConstructed: true,
	}

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setPrice(price),
		product.setStockQuantity(stockQuantity),
		product.setDiscountPercent(discountPercent),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the product description.
func (p *Product) Description() string {
	return p.description
}

// Price returns the current unit price.
func (p *Product) Price() decimal.Decimal {
	return p.price
}

// StockQuantity returns the number of units left in stock.
func (p *Product) StockQuantity() int {
	return p.stockQuantity
}

// IsActive reports whether the product is available for ordering.
func (p *Product) IsActive() bool {
	return p.isActive
}

// DiscountPercent returns the product discount percent in [0, 100].
func (p *Product) DiscountPercent() decimal.Decimal {
	return p.discountPercent
}

// Update replaces the product's mutable fields, re-running validation
// including the zero-stock/active invariant.
func (p *Product) Update(
	name string,
	description string,
	price decimal.Decimal,
	stockQuantity int,
	isActive bool,
	discountPercent decimal.Decimal,
) error {
	if err := errors.Join(
		p.setName(name),
		p.setPrice(price),
		p.setStockQuantity(stockQuantity),
		p.setDiscountPercent(discountPercent),
	); err != nil {
		return err
	}

	if err := p.setActive(isActive); err != nil {
		return err
	}

	p.description = description
	return nil
}

// DecrementStock atomically reduces the stock by quantity.
// Returns InsufficientStockError when quantity exceeds the current stock;
// in that case the stock is left unchanged.
func (p *Product) DecrementStock(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, p.stockQuantity)
	}
	if quantity > p.stockQuantity {
		return NewInsufficientStockError(p.id, quantity, p.stockQuantity)
	}

	p.stockQuantity -= quantity
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is negative", price))
	}
	p.price = price
	return nil
}

func (p *Product) setStockQuantity(stockQuantity int) error {
	if stockQuantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stockQuantity",
			fmt.Errorf("%d is negative", stockQuantity))
	}
	p.stockQuantity = stockQuantity
	return nil
}

func (p *Product) setDiscountPercent(discountPercent decimal.Decimal) error {
	if err := validatePercent("discountPercent", discountPercent); err != nil {
		return err
	}
	p.discountPercent = discountPercent
	return nil
}

func (p *Product) setActive(isActive bool) error {
	if isActive && p.stockQuantity == 0 {
		return errs.NewValueIsInvalidErrorWithCause("isActive",
			errors.New("a product with zero stock cannot be active"))
	}
	p.isActive = isActive
	return nil
}
