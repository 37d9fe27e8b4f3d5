package commands

import (
	"context"

	"sales/internal/core/domain/model/catalog"
)

// CreateProductCommandHandler handles the business logic for adding catalog products.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product creation.
// Requires a ProductUoWFactory for transactional persistence.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product creation command.
// Builds the product aggregate and persists it inside a transaction.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	product, err := catalog.NewProduct(
		cmd.ProductID(),
		cmd.Name(),
		cmd.Description(),
		cmd.Price(),
		cmd.StockQuantity(),
		cmd.IsActive(),
		cmd.DiscountPercent(),
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

	if err = uow.ProductRepository().Add(ctx, product); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
