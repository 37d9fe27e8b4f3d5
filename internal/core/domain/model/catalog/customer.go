package catalog

import (
	"errors"
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer")

// Customer represents a client who places orders.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Full name, email, and phone are required
//   - Personal discount percent stays within [0, 100]
//
// A customer referenced by orders cannot be deleted (enforced by the
// persistence layer). Discount changes are allowed at any time; order totals
// are recomputed live from current customer state, so a discount change
// affects totals reported for existing orders from that moment on.
type Customer struct {
	id              kernel.UUID
	fullName        string
	email           string
	companyName     *string
	phone           string
	registeredAt    time.Time
	discountPercent decimal.Decimal

	isConstructed bool
}

// NewCustomer creates a new Customer with validation. Registration time is set
// to the supplied now value.
func NewCustomer(
	id kernel.UUID,
	fullName string,
	email string,
	companyName *string,
	phone string,
	discountPercent decimal.Decimal,
	now time.Time,
) (*Customer, error) {
	customer := &Customer{
		registeredAt:  now,
		isConstructed: true,
	}

	if err := errors.Join(
		customer.setID(id),
		customer.setFullName(fullName),
		customer.setEmail(email),
		customer.setPhone(phone),
		customer.setDiscountPercent(discountPercent),
	); err != nil {
		return nil, err
	}

	customer.companyName = companyName
	return customer, nil
}

// RestoreCustomer reconstructs a Customer from persistence, re-running all
// field validation to ensure stored data still satisfies the invariants.
func RestoreCustomer(
	id kernel.UUID,
	fullName string,
	email string,
	companyName *string,
	phone string,
	discountPercent decimal.Decimal,
	registeredAt time.Time,
) (*Customer, error) {
	customer, err := NewCustomer(id, fullName, email, companyName, phone, discountPercent, registeredAt)
	if err != nil {
		return nil, err
	}
	return customer, nil
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// IsEqual compares two customers by their unique identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// FullName returns the customer's full name.
func (c *Customer) FullName() string {
	return c.fullName
}

// Email returns the customer's email address.
func (c *Customer) Email() string {
	return c.email
}

// CompanyName returns the optional company name, nil when not set.
func (c *Customer) CompanyName() *string {
	return c.companyName
}

// Phone returns the customer's phone number.
func (c *Customer) Phone() string {
	return c.phone
}

// RegisteredAt returns the registration timestamp.
func (c *Customer) RegisteredAt() time.Time {
	return c.registeredAt
}

// DiscountPercent returns the personal discount percent in [0, 100].
func (c *Customer) DiscountPercent() decimal.Decimal {
	return c.discountPercent
}

// Update replaces the customer's mutable contact fields and discount,
// re-running validation. The identifier and registration time never change.
func (c *Customer) Update(
	fullName string,
	email string,
	companyName *string,
	phone string,
	discountPercent decimal.Decimal,
) error {
	if err := errors.Join(
		c.setFullName(fullName),
		c.setEmail(email),
		c.setPhone(phone),
		c.setDiscountPercent(discountPercent),
	); err != nil {
		return err
	}

	c.companyName = companyName
	return nil
}

// ChangeDiscount updates the personal discount percent, validating the range.
func (c *Customer) ChangeDiscount(discountPercent decimal.Decimal) error {
	return c.setDiscountPercent(discountPercent)
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setFullName(fullName string) error {
	if fullName == "" {
		return errs.NewValueIsRequiredError("fullName")
	}
	c.fullName = fullName
	return nil
}

func (c *Customer) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *Customer) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}

func (c *Customer) setDiscountPercent(discountPercent decimal.Decimal) error {
	if err := validatePercent("discountPercent", discountPercent); err != nil {
		return err
	}
	c.discountPercent = discountPercent
	return nil
}

// validatePercent ensures a percent value stays within [0, 100].
func validatePercent(paramName string, value decimal.Decimal) error {
	if value.IsNegative() || value.GreaterThan(decimal.NewFromInt(100)) {
		return errs.NewValueIsOutOfRangeError(paramName, value.String(), 0, 100)
	}
	return nil
}
