package commands

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateCustomerCommandIsNotConstructed = errors.New(
		"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
	)
	ErrFullNameIsRequired = errors.New("full name is required")
	ErrEmailIsRequired    = errors.New("email is required")
	ErrPhoneIsRequired    = errors.New("phone is required")
)

// CreateCustomerCommand represents a request to register a new customer.
// Encapsulates the customer's contact details and personal discount.
//
// Example:
//
//	cmd, err := NewCreateCustomerCommand("Jane Smith", "jane@corp.test", &company, "+15551234567", discount)
//	if err != nil {
//	    return fmt.Errorf("invalid customer data: %w", err)
//	}
//
//	handler := NewCreateCustomerCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create customer: %w", err)
//	}
//	fmt.Printf("Created customer with ID: %s", cmd.CustomerID())
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID      kernel.UUID
	fullName        string
	email           string
	companyName     *string
	phone           string
	discountPercent decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a new customer.
// Automatically generates a unique ID for the customer.
// Validates that full name, email, and phone are not empty; the discount
// range is enforced by the domain model.
func NewCreateCustomerCommand(
	fullName string,
	email string,
	companyName *string,
	phone string,
	discountPercent decimal.Decimal,
) (CreateCustomerCommand, error) {
	command := CreateCustomerCommand{
		companyName:     companyName,
		discountPercent: discountPercent,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(kernel.NewUUID()),
		command.setFullName(fullName),
		command.setEmail(email),
		command.setPhone(phone),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateCustomerCommandIsNotConstructed if validation fails.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// CustomerID returns the generated customer ID.
func (c CreateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// FullName returns the customer's full name.
func (c CreateCustomerCommand) FullName() string {
	return c.fullName
}

// Email returns the customer's email address.
func (c CreateCustomerCommand) Email() string {
	return c.email
}

// CompanyName returns the optional company name, nil for private customers.
func (c CreateCustomerCommand) CompanyName() *string {
	return c.companyName
}

// Phone returns the customer's phone number.
func (c CreateCustomerCommand) Phone() string {
	return c.phone
}

// DiscountPercent returns the customer's personal discount.
func (c CreateCustomerCommand) DiscountPercent() decimal.Decimal {
	return c.discountPercent
}

func (c *CreateCustomerCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.customerID = id
	return nil
}

func (c *CreateCustomerCommand) setFullName(fullName string) error {
	if fullName == "" {
		return ErrFullNameIsRequired
	}

	c.fullName = fullName
	return nil
}

func (c *CreateCustomerCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *CreateCustomerCommand) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}
