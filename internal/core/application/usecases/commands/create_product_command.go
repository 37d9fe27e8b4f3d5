package commands

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrProductNameIsRequired = errors.New("product name is required")
)

// CreateProductCommand represents a request to add a new product to the catalog.
//
// Example:
//
//	cmd, err := NewCreateProductCommand("Laptop", "14 inch", price, 25, true, discount)
//	if err != nil {
//	    return fmt.Errorf("invalid product data: %w", err)
//	}
//
//	handler := NewCreateProductCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create product: %w", err)
//	}
//	fmt.Printf("Created product with ID: %s", cmd.ProductID())
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID       kernel.UUID
	name            string
	description     string
	price           decimal.Decimal
	stockQuantity   int
	isActive        bool
	discountPercent decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a new catalog product.
// Automatically generates a unique ID. Validates that the name is not empty;
// price, stock, discount ranges, and the rule that a product with zero stock
// cannot be active are enforced by the domain model.
func NewCreateProductCommand(
	name string,
	description string,
	price decimal.Decimal,
	stockQuantity int,
	isActive bool,
	discountPercent decimal.Decimal,
) (CreateProductCommand, error) {
	command := CreateProductCommand{
		description:     description,
		price:           price,
		stockQuantity:   stockQuantity,
		isActive:        isActive,
		discountPercent: discountPercent,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProductID(kernel.NewUUID()),
		command.setName(name),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateProductCommandIsNotConstructed if validation fails.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the generated product ID.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the product name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Description returns the product description, possibly empty.
func (c CreateProductCommand) Description() string {
	return c.description
}

// Price returns the unit price.
func (c CreateProductCommand) Price() decimal.Decimal {
	return c.price
}

// StockQuantity returns the initial stock level.
func (c CreateProductCommand) StockQuantity() int {
	return c.stockQuantity
}

// IsActive returns whether the product is orderable.
func (c CreateProductCommand) IsActive() bool {
	return c.isActive
}

// DiscountPercent returns the product-level discount.
func (c CreateProductCommand) DiscountPercent() decimal.Decimal {
	return c.discountPercent
}

func (c *CreateProductCommand) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.productID = id
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}

	c.name = name
	return nil
}
