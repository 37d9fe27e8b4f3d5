package commands

import (
	"context"
)

// UpdateCustomerCommandHandler handles the business logic for customer updates.
type UpdateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewUpdateCustomerCommandHandler creates a handler for customer update operations.
func NewUpdateCustomerCommandHandler(uowFactory CustomerUoWFactory) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the customer update command.
// Loads the customer, applies the changes through the aggregate, and persists
// the result in one transaction.
func (h *UpdateCustomerCommandHandler) Handle(ctx context.Context, cmd UpdateCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()
	customer, err := customerRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if err = customer.Update(
		cmd.FullName(),
		cmd.Email(),
		cmd.CompanyName(),
		cmd.Phone(),
		cmd.DiscountPercent(),
	); err != nil {
		return err
	}

	if err = customerRepo.Update(ctx, customer); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
