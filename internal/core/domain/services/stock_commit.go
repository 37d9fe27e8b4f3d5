package services

import (
	"sales/internal/core/domain/model/catalog"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"
)

// StockCommitService is a domain service responsible for committing product
// stock when an order transitions into the confirmed status.
//
// Business rules:
//   - Stock is decremented exactly once per order, on the transition into
//     confirmed. The decision is based on the previously persisted status, so
//     re-saving an already confirmed order never decrements again.
//   - All items are checked against available stock before any product is
//     touched. If any single item cannot be satisfied, no stock changes and
//     the shortfall is reported via catalog.InsufficientStockError.
//   - Transitions that do not enter confirmed (including leaving it) never
//     change stock. Cancelling a confirmed order does not restock.
//
// Example usage:
//
//	committer := services.NewStockCommitService()
//	err := committer.Commit(previousStatus, order, products)
//	var stockErr *catalog.InsufficientStockError
//	if errors.As(err, &stockErr) {
//	    // stockErr identifies the first product that ran short
//	    return
//	}
type StockCommitService struct{}

// NewStockCommitService creates a new StockCommitService instance.
func NewStockCommitService() StockCommitService {
	return StockCommitService{}
}

// Commit decrements stock for every item of o if, and only if, the order is
// now confirmed and previous is any other status. The products map must hold
// every product referenced by the order's items.
//
// The check phase runs over all items before the mutate phase, so a failure
// on the third item leaves the first two products untouched.
func (s StockCommitService) Commit(
	previous order.Status,
	o *order.Order,
	products map[kernel.UUID]*catalog.Product,
) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if o.Status() != order.Confirmed || previous == order.Confirmed {
		return nil
	}

	for _, item := range o.Items() {
		product, err := s.lookup(products, item.ProductID())
		if err != nil {
			return err
		}
		if item.Quantity() > product.StockQuantity() {
			return catalog.NewInsufficientStockError(
				product.ID(), item.Quantity(), product.StockQuantity())
		}
	}

	for _, item := range o.Items() {
		product, err := s.lookup(products, item.ProductID())
		if err != nil {
			return err
		}
		if err := product.DecrementStock(item.Quantity()); err != nil {
			return err
		}
	}

	return nil
}

func (s StockCommitService) lookup(
	products map[kernel.UUID]*catalog.Product,
	id kernel.UUID,
) (*catalog.Product, error) {
	product, ok := products[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("product", id.String())
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}
	return product, nil
}
