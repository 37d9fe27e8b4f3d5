package queries

import (
	"errors"
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves order summaries with optional filters on the
// owning customer, the status, and an inclusive creation date range.
type GetOrdersQuery struct {
	customerID  *kernel.UUID
	status      *order.Status
	createdFrom *time.Time
	createdTo   *time.Time

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to retrieve order summaries.
// All filters are optional; pass nil for no constraint. Date bounds use the
// ISO format (YYYY-MM-DD); a createdTo before createdFrom fails with
// InvalidRangeError.
func NewGetOrdersQuery(
	customerID *kernel.UUID,
	status *order.Status,
	createdFrom *string,
	createdTo *string,
) (GetOrdersQuery, error) {
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	query := GetOrdersQuery{
		customerID: customerID,
		status:     status,
		guard:      guard.NewConstructorGuard(),
	}

	var err error
	if query.createdFrom, err = parseDateBound("created_from", createdFrom); err != nil {
		return GetOrdersQuery{}, err
	}
	if query.createdTo, err = parseDateBound("created_to", createdTo); err != nil {
		return GetOrdersQuery{}, err
	}

	if query.createdFrom != nil && query.createdTo != nil &&
		query.createdTo.Before(*query.createdFrom) {
		return GetOrdersQuery{}, NewInvalidRangeError(*query.createdFrom, *query.createdTo)
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer filter, nil when unfiltered.
func (q GetOrdersQuery) CustomerID() *kernel.UUID {
	return q.customerID
}

// Status returns the status filter, nil when unfiltered.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}

// CreatedFrom returns the inclusive lower creation date bound, nil when unbounded.
func (q GetOrdersQuery) CreatedFrom() *time.Time {
	return q.createdFrom
}

// CreatedTo returns the inclusive upper creation date bound, nil when unbounded.
func (q GetOrdersQuery) CreatedTo() *time.Time {
	return q.createdTo
}

// GetOrdersQueryResponse represents one order summary in the read model.
// Totals are not included here; the single-order query computes them.
type GetOrdersQueryResponse struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	Status       string
	DeliveryCost decimal.Decimal
	TaxPercent   decimal.Decimal
	ItemCount    int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
