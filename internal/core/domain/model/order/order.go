package order

import (
	"errors"
	"fmt"
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrDuplicateProduct indicates two items within one order referencing the
	// same product. At most one item per (order, product) pair is allowed.
	ErrDuplicateProduct = errors.New("order already contains an item for this product")

	// ErrOrderIsNotEditable indicates an edit attempted outside the draft
	// status (item replacement) or on a terminal order (field changes).
	ErrOrderIsNotEditable = errors.New("order is not editable")
)

// Default charges applied when an order is created without explicit values.
var (
	// DefaultDeliveryCost is charged unless the subtotal clears the
	// free-shipping threshold.
	DefaultDeliveryCost = decimal.NewFromInt(500)

	// DefaultTaxPercent is the VAT percent applied to the gross subtotal.
	DefaultTaxPercent = decimal.NewFromInt(12)
)

// Order is the aggregate root for a customer order. It owns an
// insertion-ordered collection of line items and the pricing parameters
// (delivery cost, tax percent) used to derive totals.
//
// Invariants:
//   - Must have a valid unique identifier and an owning customer
//   - Holds at least one item; at most one item per product
//   - Delivery cost and tax percent are never negative
//   - Status changes follow the transition table in Status
//   - Items may only be replaced while the order is a draft
//
// Totals are not stored on the order: they are derived on demand from the
// frozen item prices and current catalog state via CalculateTotals.
type Order struct {
	id           kernel.UUID
	customerID   kernel.UUID
	status       Status
	deliveryCost decimal.Decimal
	taxPercent   decimal.Decimal
	createdAt    time.Time
	updatedAt    time.Time
	items        []*Item

	isConstructed bool
}

// NewOrder creates a new Order in draft status with validation.
// The item slice must be non-empty and reference distinct products; its
// insertion order is preserved for display purposes.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	deliveryCost decimal.Decimal,
	taxPercent decimal.Decimal,
	items []*Item,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Draft,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setDeliveryCost(deliveryCost),
		o.setTaxPercent(taxPercent),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, re-running validation.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	status Status,
	deliveryCost decimal.Decimal,
	taxPercent decimal.Decimal,
	items []*Item,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setStatus(status),
		o.setDeliveryCost(deliveryCost),
		o.setTaxPercent(taxPercent),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the owning customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// DeliveryCost returns the delivery charge applied below the free-shipping
// threshold.
func (o *Order) DeliveryCost() decimal.Decimal {
	return o.deliveryCost
}

// TaxPercent returns the tax percent applied to the gross subtotal.
func (o *Order) TaxPercent() decimal.Decimal {
	return o.taxPercent
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Items returns the line items in insertion order.
func (o *Order) Items() []*Item {
	return o.items
}

// ChangeStatus moves the order to next, validating the change against the
// transition table and the explicit cancelled guard. Requesting the current
// status is a no-op. Stock commitment on the transition to confirmed is a
// separate, explicit operation (see services.StockCommitService); this method
// only changes the status field.
func (o *Order) ChangeStatus(next Status, now time.Time) error {
	if err := o.status.ValidateChangeTo(next); err != nil {
		return err
	}

	if next == o.status {
		return nil
	}

	o.status = next
	o.updatedAt = now
	return nil
}

// ReplaceItems swaps the whole item collection. Allowed only while the order
// is a draft; confirmed and terminal orders reject item edits.
func (o *Order) ReplaceItems(items []*Item, now time.Time) error {
	if o.status != Draft {
		return fmt.Errorf("%w: items can only be replaced in draft status, current status is %s",
			ErrOrderIsNotEditable, o.status)
	}

	if err := o.setItems(items); err != nil {
		return err
	}

	o.updatedAt = now
	return nil
}

// ChangeCharges updates the delivery cost and tax percent. Rejected for
// terminal orders.
func (o *Order) ChangeCharges(deliveryCost decimal.Decimal, taxPercent decimal.Decimal, now time.Time) error {
	if o.status.IsTerminal() {
		return fmt.Errorf("%w: %s is a terminal status", ErrOrderIsNotEditable, o.status)
	}

	if err := errors.Join(
		o.setDeliveryCost(deliveryCost),
		o.setTaxPercent(taxPercent),
	); err != nil {
		return err
	}

	o.updatedAt = now
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setDeliveryCost(deliveryCost decimal.Decimal) error {
	if deliveryCost.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("deliveryCost",
			fmt.Errorf("%s is negative", deliveryCost))
	}
	o.deliveryCost = deliveryCost
	return nil
}

func (o *Order) setTaxPercent(taxPercent decimal.Decimal) error {
	if taxPercent.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("taxPercent",
			fmt.Errorf("%s is negative", taxPercent))
	}
	o.taxPercent = taxPercent
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	seen := make(map[kernel.UUID]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if _, ok := seen[item.ProductID()]; ok {
			return fmt.Errorf("%w: product %s", ErrDuplicateProduct, item.ProductID())
		}
		seen[item.ProductID()] = struct{}{}
	}

	o.items = items
	return nil
}
