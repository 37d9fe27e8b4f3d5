package queries

import (
	"context"

	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order with live-computed totals.
// The order, its customer, and the referenced products are rebuilt from the
// database and run through the domain pricing function, so the query side
// always agrees with the write side on the formulas.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order.
// Returns errs.ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	aggregates, err := loadOrderAggregates(ctx, h.db, ` WHERE id = ?`, query.OrderID().Bytes())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	if len(aggregates) == 0 {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	aggregate := aggregates[0]

	customer, err := loadCustomerAggregate(ctx, h.db, aggregate.CustomerID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	products, err := loadProductAggregates(ctx, h.db, productIDsOf(aggregate))
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	totals, err := order.CalculateTotals(aggregate, customer, products)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	items := make([]GetOrderQueryItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, GetOrderQueryItemResponse{
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
			Price:     item.Price(),
			Subtotal:  item.Subtotal(),
		})
	}

	return GetOrderQueryResponse{
		ID:             aggregate.ID(),
		CustomerID:     aggregate.CustomerID(),
		Status:         aggregate.Status().String(),
		DeliveryCost:   aggregate.DeliveryCost(),
		TaxPercent:     aggregate.TaxPercent(),
		Items:          items,
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
		Subtotal:       totals.Subtotal,
		TotalDiscounts: totals.TotalDiscounts,
		TotalTax:       totals.TotalTax,
		TotalDelivery:  totals.TotalDelivery,
		TotalAmount:    totals.TotalAmount,
	}, nil
}
