package queries

import (
	"context"

	"sales/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomersQueryHandler retrieves customer information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetCustomersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomersQueryHandler creates a handler for customer retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetCustomersQueryHandler(db *gorm.DB) GetCustomersQueryHandler {
	return GetCustomersQueryHandler{db: db}
}

// Handle executes the query to retrieve customers.
// Returns a slice of customer read models sorted by full name.
func (h GetCustomersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomersQuery,
) ([]GetCustomersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			full_name,
			email,
			company_name,
			phone,
			discount_percent,
			registered_at
		FROM customers
	`
	args := make([]any, 0, 1)
	if query.CompanyName() != nil {
		sql += ` WHERE company_name = ?`
		args = append(args, *query.CompanyName())
	}
	sql += ` ORDER BY full_name`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]GetCustomersQueryResponse, 0)
	for rows.Next() {
		var customer GetCustomersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&customer.FullName,
			&customer.Email,
			&customer.CompanyName,
			&customer.Phone,
			&customer.DiscountPercent,
			&customer.RegisteredAt,
		)
		if err != nil {
			return nil, err
		}

		customerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		customer.ID = customerID
		customers = append(customers, customer)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}
