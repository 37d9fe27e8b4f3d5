package commands

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
)

var (
	ErrOrderItemInputIsNotConstructed = errors.New(
		"OrderItemInput must be created via NewOrderItemInput constructor",
	)
	ErrQuantityIsInvalid = errs.NewValueIsInvalidError("quantity must be greater than 0")
	ErrItemsAreRequired  = errs.NewValueIsRequiredError("order must contain at least one item")
)

// OrderItemInput is one requested order line: a product and a quantity.
// The unit price is never supplied by the caller; it is captured from the
// product at the moment the line is added to the order.
type OrderItemInput struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewOrderItemInput creates a requested order line.
// Validates that the product ID is valid and the quantity is positive.
func NewOrderItemInput(productID kernel.UUID, quantity int) (OrderItemInput, error) {
	input := OrderItemInput{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		input.setProductID(productID),
		input.setQuantity(quantity),
	); err != nil {
		return OrderItemInput{}, err
	}

	return input, nil
}

// Validate ensures the input was created through the constructor.
func (i OrderItemInput) Validate() error {
	return i.guard.Validate(ErrOrderItemInputIsNotConstructed)
}

// ProductID returns the requested product's identifier.
func (i OrderItemInput) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the requested quantity.
func (i OrderItemInput) Quantity() int {
	return i.quantity
}

func (i *OrderItemInput) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	i.productID = productID
	return nil
}

func (i *OrderItemInput) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	i.quantity = quantity
	return nil
}

func validateItemInputs(items []OrderItemInput) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	return nil
}
