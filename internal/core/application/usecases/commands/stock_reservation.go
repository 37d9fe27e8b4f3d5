package commands

import (
	"context"
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/core/domain/services"
)

// applyStatusChange moves the aggregate to next and, when the order enters
// confirmed for the first time, decrements the stock of every referenced
// product within the current unit of work. previous must be the status the
// order held in storage before this operation, so re-confirming never
// decrements twice. Any failure leaves the transaction to be rolled back
// with order and stock untouched.
func applyStatusChange(
	ctx context.Context,
	uow UoW,
	committer services.StockCommitService,
	aggregate *order.Order,
	next order.Status,
	now time.Time,
) error {
	previous := aggregate.Status()
	if err := aggregate.ChangeStatus(next, now); err != nil {
		return err
	}

	if aggregate.Status() != order.Confirmed || previous == order.Confirmed {
		return nil
	}

	productRepo := uow.ProductRepository()

	ids := make([]kernel.UUID, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		ids = append(ids, item.ProductID())
	}

	products, err := productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return err
	}

	if err = committer.Commit(previous, aggregate, products); err != nil {
		return err
	}

	for _, product := range products {
		if err = productRepo.Update(ctx, product); err != nil {
			return err
		}
	}

	return nil
}
