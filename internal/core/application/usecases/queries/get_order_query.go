package queries

import (
	"errors"
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its lines and computed totals.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderQueryHandler(db)
//	response, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve order: %w", err)
//	}
//	fmt.Printf("Order %s totals %s\n", response.ID, response.TotalAmount)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve a single order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to retrieve.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryItemResponse represents one order line in the read model.
type GetOrderQueryItemResponse struct {
	ProductID kernel.UUID
	Quantity  int
	Price     decimal.Decimal
	Subtotal  decimal.Decimal
}

// GetOrderQueryResponse represents a full order in the read model, with
// totals computed live from the current catalog state.
type GetOrderQueryResponse struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	Status       string
	DeliveryCost decimal.Decimal
	TaxPercent   decimal.Decimal
	Items        []GetOrderQueryItemResponse
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Subtotal       decimal.Decimal
	TotalDiscounts decimal.Decimal
	TotalTax       decimal.Decimal
	TotalDelivery  decimal.Decimal
	TotalAmount    decimal.Decimal
}
