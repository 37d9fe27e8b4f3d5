package queries

import (
	"context"

	"sales/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProductsQueryHandler retrieves product information from the database.
type GetProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetProductsQueryHandler creates a handler for product retrieval queries.
func NewGetProductsQueryHandler(db *gorm.DB) GetProductsQueryHandler {
	return GetProductsQueryHandler{db: db}
}

// Handle executes the query to retrieve products.
// Returns a slice of product read models sorted by name.
func (h GetProductsQueryHandler) Handle(
	ctx context.Context,
	query GetProductsQuery,
) ([]GetProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			name,
			description,
			price,
			stock_quantity,
			is_active,
			discount_percent
		FROM products
		WHERE 1=1
	`
	args := make([]any, 0, 4)
	if query.IsActive() != nil {
		sql += ` AND is_active = ?`
		args = append(args, *query.IsActive())
	}
	if query.NameContains() != nil {
		sql += ` AND name ILIKE ?`
		args = append(args, "%"+*query.NameContains()+"%")
	}
	if query.MinPrice() != nil {
		sql += ` AND price >= ?`
		args = append(args, *query.MinPrice())
	}
	if query.MaxPrice() != nil {
		sql += ` AND price <= ?`
		args = append(args, *query.MaxPrice())
	}
	sql += ` ORDER BY name`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]GetProductsQueryResponse, 0)
	for rows.Next() {
		var product GetProductsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&product.Name,
			&product.Description,
			&product.Price,
			&product.StockQuantity,
			&product.IsActive,
			&product.DiscountPercent,
		)
		if err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		product.ID = productID
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
