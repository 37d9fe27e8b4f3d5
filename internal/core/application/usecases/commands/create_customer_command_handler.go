package commands

import (
	"context"
	"time"

	"sales/internal/core/domain/model/catalog"
)

// CreateCustomerCommandHandler handles the business logic for customer registration.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewCreateCustomerCommandHandler creates a handler for customer registration.
// Requires a CustomerUoWFactory for transactional persistence.
func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the customer registration command.
// Builds the customer aggregate and persists it inside a transaction.
func (h *CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	customer, err := catalog.NewCustomer(
		cmd.CustomerID(),
		cmd.FullName(),
		cmd.Email(),
		cmd.CompanyName(),
		cmd.Phone(),
		cmd.DiscountPercent(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CustomerRepository().Add(ctx, customer); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
