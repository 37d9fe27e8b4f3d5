// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetCustomersQueryIsNotConstructed = errors.New(
	"GetCustomersQuery must be created via NewGetCustomersQuery constructor",
)

// GetCustomersQuery retrieves customers, optionally narrowed to one company.
type GetCustomersQuery struct {
	companyName *string

	guard guard.ConstructorGuard
}

// NewGetCustomersQuery creates a query to retrieve customers.
// Pass nil companyName to fetch all customers.
func NewGetCustomersQuery(companyName *string) GetCustomersQuery {
	return GetCustomersQuery{
		companyName: companyName,
		guard:       guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomersQueryIsNotConstructed)
}

// CompanyName returns the company filter, nil when unfiltered.
func (q GetCustomersQuery) CompanyName() *string {
	return q.companyName
}

// GetCustomersQueryResponse represents one customer in the read model.
type GetCustomersQueryResponse struct {
	ID              kernel.UUID
	FullName        string
	Email           string
	CompanyName     *string
	Phone           string
	DiscountPercent decimal.Decimal
	RegisteredAt    time.Time
}
