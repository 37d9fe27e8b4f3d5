package commands

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a request to replace a draft order's lines
// and adjust its delivery cost and tax rate, optionally moving the order to
// a new status in the same transaction. Orders past draft refuse line
// changes; cancelled orders refuse any change at all.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	items        []OrderItemInput
	deliveryCost decimal.Decimal
	taxPercent   decimal.Decimal
	status       *order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an existing order.
// A nil status leaves the order's current status untouched. Nil charges fall
// back to order.DefaultDeliveryCost and order.DefaultTaxPercent, mirroring
// placement.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	items []OrderItemInput,
	deliveryCost *decimal.Decimal,
	taxPercent *decimal.Decimal,
	status *order.Status,
) (UpdateOrderCommand, error) {
	command := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setItems(items),
		command.setDeliveryCost(deliveryCost),
		command.setTaxPercent(taxPercent),
		command.setStatus(status),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Items returns the replacement order lines.
func (c UpdateOrderCommand) Items() []OrderItemInput {
	return c.items
}

// DeliveryCost returns the new delivery cost.
func (c UpdateOrderCommand) DeliveryCost() decimal.Decimal {
	return c.deliveryCost
}

// TaxPercent returns the new tax rate.
func (c UpdateOrderCommand) TaxPercent() decimal.Decimal {
	return c.taxPercent
}

// Status returns the requested status change, or nil when the status
// should stay as it is.
func (c UpdateOrderCommand) Status() *order.Status {
	return c.status
}

func (c *UpdateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *UpdateOrderCommand) setDeliveryCost(cost *decimal.Decimal) error {
	if cost == nil {
		c.deliveryCost = order.DefaultDeliveryCost
		return nil
	}

	c.deliveryCost = *cost
	return nil
}

func (c *UpdateOrderCommand) setTaxPercent(percent *decimal.Decimal) error {
	if percent == nil {
		c.taxPercent = order.DefaultTaxPercent
		return nil
	}

	c.taxPercent = *percent
	return nil
}

func (c *UpdateOrderCommand) setStatus(status *order.Status) error {
	if status == nil {
		return nil
	}

	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *UpdateOrderCommand) setItems(items []OrderItemInput) error {
	if err := validateItemInputs(items); err != nil {
		return err
	}

	c.items = items
	return nil
}
