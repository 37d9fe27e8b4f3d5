package commands

import (
	"context"
	"time"

	"sales/internal/core/domain/model/order"
	"sales/internal/core/domain/services"
)

// UpdateOrderCommandHandler handles the business logic for editing draft orders.
type UpdateOrderCommandHandler struct {
	uowFactory UoWFactory
	committer  services.StockCommitService
}

// NewUpdateOrderCommandHandler creates a handler for order update operations.
func NewUpdateOrderCommandHandler(
	uowFactory UoWFactory,
	committer services.StockCommitService,
) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		committer:  committer,
	}
}

// Handle processes the order update command.
// Cancelled orders are rejected outright. Replacement lines go through the
// same catalog checks as placement and capture current product prices.
// A requested status change is applied after the lines, so an order edited
// and confirmed in one call reserves stock for its final line set.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if aggregate.Status() == order.Cancelled {
		return order.ErrCancelledOrderIsImmutable
	}

	items, err := buildOrderItems(ctx, uow.ProductRepository(), cmd.Items())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if err = aggregate.ChangeCharges(cmd.DeliveryCost(), cmd.TaxPercent(), now); err != nil {
		return err
	}
	if err = aggregate.ReplaceItems(items, now); err != nil {
		return err
	}

	if next := cmd.Status(); next != nil && *next != aggregate.Status() {
		if err = applyStatusChange(ctx, uow, h.committer, aggregate, *next, now); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
