package commands

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand represents a request to change an existing customer's
// contact details or personal discount.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID      kernel.UUID
	fullName        string
	email           string
	companyName     *string
	phone           string
	discountPercent decimal.Decimal

	guard guard.ConstructorGuard
}

// NewUpdateCustomerCommand creates a command to update an existing customer.
func NewUpdateCustomerCommand(
	customerID kernel.UUID,
	fullName string,
	email string,
	companyName *string,
	phone string,
	discountPercent decimal.Decimal,
) (UpdateCustomerCommand, error) {
	command := UpdateCustomerCommand{
		companyName:     companyName,
		discountPercent: discountPercent,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setFullName(fullName),
		command.setEmail(email),
		command.setPhone(phone),
	); err != nil {
		return UpdateCustomerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier of the customer to update.
func (c UpdateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// FullName returns the new full name.
func (c UpdateCustomerCommand) FullName() string {
	return c.fullName
}

// Email returns the new email address.
func (c UpdateCustomerCommand) Email() string {
	return c.email
}

// CompanyName returns the new company name, nil to clear it.
func (c UpdateCustomerCommand) CompanyName() *string {
	return c.companyName
}

// Phone returns the new phone number.
func (c UpdateCustomerCommand) Phone() string {
	return c.phone
}

// DiscountPercent returns the new personal discount.
func (c UpdateCustomerCommand) DiscountPercent() decimal.Decimal {
	return c.discountPercent
}

func (c *UpdateCustomerCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.customerID = id
	return nil
}

func (c *UpdateCustomerCommand) setFullName(fullName string) error {
	if fullName == "" {
		return ErrFullNameIsRequired
	}

	c.fullName = fullName
	return nil
}

func (c *UpdateCustomerCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *UpdateCustomerCommand) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}
