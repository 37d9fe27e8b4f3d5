package order

import (
	"errors"
	"fmt"

	"sales/internal/core/domain/model/catalog"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through one of the item constructors.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem, NewItemWithPrice, or RestoreItem")

// Item is a line item within an order. It references exactly one product and
// freezes the unit price at the moment the item is created: later product
// price changes never retroactively affect existing items.
type Item struct {
	productID kernel.UUID
	quantity  int
	price     decimal.Decimal

	isConstructed bool
}

// NewItem creates a line item for the given product, capturing the product's
// current price as the frozen unit price.
func NewItem(product *catalog.Product, quantity int) (*Item, error) {
	if err := product.Validate(); err != nil {
		return nil, err
	}
	return NewItemWithPrice(product.ID(), quantity, product.Price())
}

// NewItemWithPrice creates a line item with an explicitly supplied unit price.
// Used when the caller fixes the price instead of capturing the product's
// current one.
func NewItemWithPrice(productID kernel.UUID, quantity int, price decimal.Decimal) (*Item, error) {
	item := &Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setPrice(price),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs a line item from persistence.
func RestoreItem(productID kernel.UUID, quantity int, price decimal.Decimal) (*Item, error) {
	return NewItemWithPrice(productID, quantity, price)
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ProductID returns the identifier of the referenced product.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the ordered quantity, always at least 1.
func (i *Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price captured when the item was created.
func (i *Item) Price() decimal.Decimal {
	return i.price
}

// Subtotal returns price multiplied by quantity for this line.
func (i *Item) Subtotal() decimal.Decimal {
	return i.price.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not at least 1", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is negative", price))
	}
	i.price = price
	return nil
}
