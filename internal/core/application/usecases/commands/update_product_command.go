package commands

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand represents a request to change an existing catalog
// product. Price changes never affect items already placed on orders.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID       kernel.UUID
	name            string
	description     string
	price           decimal.Decimal
	stockQuantity   int
	isActive        bool
	discountPercent decimal.Decimal

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to update an existing product.
func NewUpdateProductCommand(
	productID kernel.UUID,
	name string,
	description string,
	price decimal.Decimal,
	stockQuantity int,
	isActive bool,
	discountPercent decimal.Decimal,
) (UpdateProductCommand, error) {
	command := UpdateProductCommand{
		description:     description,
		price:           price,
		stockQuantity:   stockQuantity,
		isActive:        isActive,
		discountPercent: discountPercent,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProductID(productID),
		command.setName(name),
	); err != nil {
		return UpdateProductCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to update.
func (c UpdateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the new product name.
func (c UpdateProductCommand) Name() string {
	return c.name
}

// Description returns the new description.
func (c UpdateProductCommand) Description() string {
	return c.description
}

// Price returns the new unit price.
func (c UpdateProductCommand) Price() decimal.Decimal {
	return c.price
}

// StockQuantity returns the new stock level.
func (c UpdateProductCommand) StockQuantity() int {
	return c.stockQuantity
}

// IsActive returns the new active flag.
func (c UpdateProductCommand) IsActive() bool {
	return c.isActive
}

// DiscountPercent returns the new product-level discount.
func (c UpdateProductCommand) DiscountPercent() decimal.Decimal {
	return c.discountPercent
}

func (c *UpdateProductCommand) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.productID = id
	return nil
}

func (c *UpdateProductCommand) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}

	c.name = name
	return nil
}
