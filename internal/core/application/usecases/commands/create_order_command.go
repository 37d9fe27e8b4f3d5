package commands

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new order. Orders start
// as drafts unless an initial status is requested; placing an order directly
// as confirmed reserves stock in the same transaction.
//
// Example:
//
//	line, _ := NewOrderItemInput(productID, 2)
//	cmd, err := NewCreateOrderCommand(customerID, []OrderItemInput{line}, deliveryCost, taxPercent, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, committer)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s created as draft", cmd.OrderID())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerID   kernel.UUID
	items        []OrderItemInput
	deliveryCost decimal.Decimal
	taxPercent   decimal.Decimal
	status       order.Status

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Automatically generates a unique ID for the order. initialStatus may be nil,
// meaning draft; a non-nil status still has to be reachable from draft. Nil
// charges fall back to order.DefaultDeliveryCost and order.DefaultTaxPercent.
// Validates that the customer ID is valid and at least one item is requested;
// product existence, availability, and stock levels are checked by the handler.
func NewCreateOrderCommand(
	customerID kernel.UUID,
	items []OrderItemInput,
	deliveryCost *decimal.Decimal,
	taxPercent *decimal.Decimal,
	initialStatus *order.Status,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(kernel.NewUUID()),
		command.setCustomerID(customerID),
		command.setItems(items),
		command.setDeliveryCost(deliveryCost),
		command.setTaxPercent(taxPercent),
		command.setStatus(initialStatus),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the generated order ID.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []OrderItemInput {
	return c.items
}

// DeliveryCost returns the delivery cost to record on the order.
func (c CreateOrderCommand) DeliveryCost() decimal.Decimal {
	return c.deliveryCost
}

// TaxPercent returns the tax rate to record on the order.
func (c CreateOrderCommand) TaxPercent() decimal.Decimal {
	return c.taxPercent
}

// Status returns the requested initial status, order.Draft when none was given.
func (c CreateOrderCommand) Status() order.Status {
	return c.status
}

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemInput) error {
	if err := validateItemInputs(items); err != nil {
		return err
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setDeliveryCost(cost *decimal.Decimal) error {
	if cost == nil {
		c.deliveryCost = order.DefaultDeliveryCost
		return nil
	}

	c.deliveryCost = *cost
	return nil
}

func (c *CreateOrderCommand) setTaxPercent(percent *decimal.Decimal) error {
	if percent == nil {
		c.taxPercent = order.DefaultTaxPercent
		return nil
	}

	c.taxPercent = *percent
	return nil
}

func (c *CreateOrderCommand) setStatus(status *order.Status) error {
	if status == nil {
		c.status = order.Draft
		return nil
	}

	if err := status.Validate(); err != nil {
		return err
	}

	c.status = *status
	return nil
}
