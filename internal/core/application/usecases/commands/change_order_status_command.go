package commands

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a request to move an order to another
// status. The transition into confirmed is the point where product stock is
// reserved.
//
// Example:
//
//	cmd, err := NewChangeOrderStatusCommand(orderID, order.Confirmed)
//	if err != nil {
//	    return fmt.Errorf("invalid status change: %w", err)
//	}
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory, committer)
//	err = handler.Handle(ctx, cmd)
//	var stockErr *catalog.InsufficientStockError
//	if errors.As(err, &stockErr) {
//	    // confirmation failed, nothing was decremented
//	    return
//	}
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to change an order's status.
// Validates that the order ID and the target status are valid; whether the
// transition itself is allowed is decided by the order aggregate.
func NewChangeOrderStatusCommand(orderID kernel.UUID, status order.Status) (ChangeOrderStatusCommand, error) {
	command := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setStatus(status),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to change.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the requested target status.
func (c ChangeOrderStatusCommand) Status() order.Status {
	return c.status
}

func (c *ChangeOrderStatusCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *ChangeOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
