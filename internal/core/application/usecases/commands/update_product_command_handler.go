package commands

import (
	"context"
)

// UpdateProductCommandHandler handles the business logic for product updates.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewUpdateProductCommandHandler creates a handler for product update operations.
func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product update command.
// Loads the product, applies the changes through the aggregate, and persists
// the result in one transaction.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) error {
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

	productRepo := uow.ProductRepository()
	product, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if err = product.Update(
		cmd.Name(),
		cmd.Description(),
		cmd.Price(),
		cmd.StockQuantity(),
		cmd.IsActive(),
		cmd.DiscountPercent(),
	); err != nil {
		return err
	}

	if err = productRepo.Update(ctx, product); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
