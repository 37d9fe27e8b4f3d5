package queries

import (
	"errors"
	"fmt"
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// dateLayout is the wire format for report range bounds.
const dateLayout = "2006-01-02"

var (
	ErrGetSalesReportQueryIsNotConstructed = errors.New(
		"GetSalesReportQuery must be created via NewGetSalesReportQuery constructor",
	)

	// ErrInvalidRange is returned when the end date precedes the start date.
	ErrInvalidRange = errors.New("invalid report range")

	// ErrNoData is returned when no confirmed orders fall inside the range.
	ErrNoData = errors.New("no confirmed orders in range")
)

// InvalidRangeError reports a range whose end precedes its start.
type InvalidRangeError struct {
	Start time.Time
	End   time.Time
}

func NewInvalidRangeError(start time.Time, end time.Time) *InvalidRangeError {
	return &InvalidRangeError{Start: start, End: end}
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("%s: end %s precedes start %s",
		ErrInvalidRange, e.End.Format(dateLayout), e.Start.Format(dateLayout))
}

func (e *InvalidRangeError) Unwrap() error {
	return ErrInvalidRange
}

// NoDataError reports that the requested range contained no confirmed orders.
// Start and End are nil when the corresponding bound was absent.
type NoDataError struct {
	Start *time.Time
	End   *time.Time
}

func NewNoDataError(start *time.Time, end *time.Time) *NoDataError {
	return &NoDataError{Start: start, End: end}
}

func (e *NoDataError) Error() string {
	format := func(bound *time.Time) string {
		if bound == nil {
			return "-"
		}
		return bound.Format(dateLayout)
	}
	return fmt.Sprintf("%s: %s .. %s", ErrNoData, format(e.Start), format(e.End))
}

func (e *NoDataError) Unwrap() error {
	return ErrNoData
}

// GetSalesReportQuery aggregates confirmed orders whose creation date falls
// inside an inclusive date range. Both bounds are optional.
//
// Example:
//
//	query, err := NewGetSalesReportQuery(strPtr("2025-03-01"), strPtr("2025-03-31"))
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetSalesReportQueryHandler(db)
//	report, err := handler.Handle(ctx, query)
//	if errors.Is(err, ErrNoData) {
//	    // nothing confirmed in March
//	    return
//	}
type GetSalesReportQuery struct {
	start *time.Time
	end   *time.Time

	guard guard.ConstructorGuard
}

// NewGetSalesReportQuery creates a report query from optional ISO date
// strings (YYYY-MM-DD). A malformed date fails with a validation error; an
// end date before the start date fails with InvalidRangeError.
func NewGetSalesReportQuery(start *string, end *string) (GetSalesReportQuery, error) {
	query := GetSalesReportQuery{
		guard: guard.NewConstructorGuard(),
	}

	var err error
	if query.start, err = parseDateBound("start", start); err != nil {
		return GetSalesReportQuery{}, err
	}
	if query.end, err = parseDateBound("end", end); err != nil {
		return GetSalesReportQuery{}, err
	}

	if query.start != nil && query.end != nil && query.end.Before(*query.start) {
		return GetSalesReportQuery{}, NewInvalidRangeError(*query.start, *query.end)
	}

	return query, nil
}

func parseDateBound(paramName string, value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}

	parsed, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return &parsed, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSalesReportQuery) Validate() error {
	return q.guard.Validate(ErrGetSalesReportQueryIsNotConstructed)
}

// Start returns the inclusive lower bound, nil when unbounded.
func (q GetSalesReportQuery) Start() *time.Time {
	return q.start
}

// End returns the inclusive upper bound, nil when unbounded.
func (q GetSalesReportQuery) End() *time.Time {
	return q.end
}

// TopCustomer is one row of the customer ranking: a customer and what they
// spent across the selected orders.
type TopCustomer struct {
	CustomerID kernel.UUID
	TotalSpent decimal.Decimal
}

// GetSalesReportQueryResponse is the aggregated report payload. TopProduct
// is nil when the selected orders carry no items.
type GetSalesReportQueryResponse struct {
	Revenue      decimal.Decimal
	OrderCount   int
	TopCustomers []TopCustomer
	TopProduct   *kernel.UUID
}
