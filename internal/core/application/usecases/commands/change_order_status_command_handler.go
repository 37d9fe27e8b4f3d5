package commands

import (
	"context"
	"time"

	"sales/internal/core/domain/services"
)

// ChangeOrderStatusCommandHandler handles the business logic for order status
// transitions, including the one-time stock reservation on confirmation.
type ChangeOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	committer  services.StockCommitService
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
// Requires a UoWFactory since confirmation updates both the order and the
// stock of its products in one transaction.
func NewChangeOrderStatusCommandHandler(
	uowFactory UoWFactory,
	committer services.StockCommitService,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		committer:  committer,
	}
}

// Handle processes the status change command.
// The stock commit decision compares the requested status against the status
// previously persisted, so re-confirming an already confirmed order never
// decrements stock twice. An insufficient stock failure rolls everything
// back: order status and all stock levels stay as they were.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	if err = applyStatusChange(ctx, uow, h.committer, aggregate, cmd.Status(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
