package order

import (
	"fmt"

	"sales/internal/core/domain/model/catalog"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Pricing thresholds. The two thresholds are deliberately distinct: the
// order-wide discount kicks in far above the free-shipping bound.
var (
	// globalDiscountThreshold: subtotals strictly above this gain an
	// order-wide discount of globalDiscountRate.
	globalDiscountThreshold = decimal.NewFromInt(150000)

	// globalDiscountRate is the order-wide discount applied above the
	// threshold.
	globalDiscountRate = decimal.RequireFromString("0.1")

	// freeDeliveryThreshold: subtotals strictly above this ship for free.
	freeDeliveryThreshold = decimal.NewFromInt(2000)

	hundred = decimal.NewFromInt(100)
)

// Totals holds the derived pricing quantities for one order. All values are
// computed on demand from the order's frozen item prices and the supplied
// catalog snapshot; nothing here is stored or cached.
type Totals struct {
	// Subtotal is the sum of item price times quantity, using the prices
	// captured on the items, not the products' live prices.
	Subtotal decimal.Decimal

	// TotalDiscounts is the additive sum of product discounts, the customer's
	// personal discount, and the order-wide discount above the threshold.
	// The sources stack without clamping and can together exceed the subtotal.
	TotalDiscounts decimal.Decimal

	// TotalTax is tax on the gross subtotal. The base is deliberately the
	// undiscounted subtotal.
	TotalTax decimal.Decimal

	// TotalDelivery is zero above the free-shipping threshold, otherwise the
	// order's delivery cost.
	TotalDelivery decimal.Decimal

	// TotalAmount is subtotal - discounts + tax + delivery. Not floored at
	// zero: heavy discount stacking can drive it negative.
	TotalAmount decimal.Decimal
}

// CalculateTotals derives the order's totals from the current catalog state.
// It is a pure function: the customer and product snapshot are explicit
// arguments, catalog state is never mutated, and results must not be cached
// across requests since catalog state can change between reads.
//
// The products map must contain every product referenced by the order's
// items; a missing product yields an error identifying it.
func CalculateTotals(
	o *Order,
	customer *catalog.Customer,
	products map[kernel.UUID]*catalog.Product,
) (Totals, error) {
	if err := o.Validate(); err != nil {
		return Totals{}, err
	}
	if err := customer.Validate(); err != nil {
		return Totals{}, err
	}
	if !customer.ID().IsEqual(o.CustomerID()) {
		return Totals{}, errs.NewValueIsInvalidErrorWithCause("customer",
			fmt.Errorf("customer %s does not own order %s", customer.ID(), o.ID()))
	}

	subtotal := decimal.Zero
	productDiscounts := decimal.Zero

	for _, item := range o.Items() {
		product, ok := products[item.ProductID()]
		if !ok {
			return Totals{}, errs.NewObjectNotFoundError("product", item.ProductID().String())
		}
		if err := product.Validate(); err != nil {
			return Totals{}, err
		}

		lineSubtotal := item.Subtotal()
		subtotal = subtotal.Add(lineSubtotal)
		productDiscounts = productDiscounts.Add(
			product.DiscountPercent().Div(hundred).Mul(lineSubtotal))
	}

	customerDiscount := customer.DiscountPercent().Div(hundred).Mul(subtotal)

	globalDiscount := decimal.Zero
	if subtotal.GreaterThan(globalDiscountThreshold) {
		globalDiscount = subtotal.Mul(globalDiscountRate)
	}

	totalDiscounts := productDiscounts.Add(customerDiscount).Add(globalDiscount)
	totalTax := subtotal.Mul(o.TaxPercent().Div(hundred))

	totalDelivery := o.DeliveryCost()
	if subtotal.GreaterThan(freeDeliveryThreshold) {
		totalDelivery = decimal.Zero
	}

	return Totals{
		Subtotal:       subtotal,
		TotalDiscounts: totalDiscounts,
		TotalTax:       totalTax,
		TotalDelivery:  totalDelivery,
		TotalAmount:    subtotal.Sub(totalDiscounts).Add(totalTax).Add(totalDelivery),
	}, nil
}
