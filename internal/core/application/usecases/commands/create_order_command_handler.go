package commands

import (
	"context"
	"fmt"
	"time"

	"sales/internal/core/domain/model/catalog"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/core/domain/services"
	"sales/internal/core/ports"
	"sales/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// New orders start in draft status; stock is only reserved when the order is
// placed directly as confirmed.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	committer  services.StockCommitService
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires a UoWFactory since placement reads customers and products and
// writes the order in one transaction.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	committer services.StockCommitService,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		committer:  committer,
	}
}

// Handle processes the order placement command.
// Verifies that the customer exists, that every requested product is active
// and has enough stock at placement time, freezes current product prices into
// the order lines, and persists the order. When the command asks for an
// initial status other than draft, the transition is validated from draft and
// confirmation reserves stock within the same transaction.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	if _, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	items, err := buildOrderItems(ctx, uow.ProductRepository(), cmd.Items())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.DeliveryCost(),
		cmd.TaxPercent(),
		items,
		now,
	)
	if err != nil {
		return err
	}

	if cmd.Status() != order.Draft {
		if err = applyStatusChange(ctx, uow, h.committer, aggregate, cmd.Status(), now); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// buildOrderItems resolves requested lines against the catalog and freezes
// current product prices into order items. Each product must exist, be
// active, and have enough stock at this moment. The stock itself is not
// decremented here; that happens on confirmation.
func buildOrderItems(
	ctx context.Context,
	productRepo ports.ProductRepository,
	inputs []OrderItemInput,
) ([]*order.Item, error) {
	ids := make([]kernel.UUID, 0, len(inputs))
	for _, input := range inputs {
		ids = append(ids, input.ProductID())
	}

	products, err := productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(inputs))
	for _, input := range inputs {
		product, ok := products[input.ProductID()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("product", input.ProductID().String())
		}
		if !product.IsActive() {
			return nil, errs.NewValueIsInvalidErrorWithCause("items",
				fmt.Errorf("product %s is not available for ordering", product.ID()))
		}
		if input.Quantity() > product.StockQuantity() {
			return nil, catalog.NewInsufficientStockError(
				product.ID(), input.Quantity(), product.StockQuantity())
		}

		item, err := order.NewItem(product, input.Quantity())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
