package queries

import (
	"context"

	"sales/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves order summaries from the database.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve order summaries.
// Returns orders sorted by creation time, newest first.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			o.id,
			o.customer_id,
			o.status,
			o.delivery_cost,
			o.tax_percent,
			(SELECT COUNT(*) FROM order_items i WHERE i.order_id = o.id) AS item_count,
			o.created_at,
			o.updated_at
		FROM orders o
		WHERE 1=1
	`
	args := make([]any, 0, 4)
	if query.CustomerID() != nil {
		sql += ` AND o.customer_id = ?`
		args = append(args, query.CustomerID().Bytes())
	}
	if query.Status() != nil {
		sql += ` AND o.status = ?`
		args = append(args, query.Status().String())
	}
	if query.CreatedFrom() != nil {
		sql += ` AND o.created_at::date >= ?`
		args = append(args, query.CreatedFrom().Format(dateLayout))
	}
	if query.CreatedTo() != nil {
		sql += ` AND o.created_at::date <= ?`
		args = append(args, query.CreatedTo().Format(dateLayout))
	}
	sql += ` ORDER BY o.created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersQueryResponse, 0)
	for rows.Next() {
		var summary GetOrdersQueryResponse
		var id, customerID uuid.UUID

		err = rows.Scan(
			&id,
			&customerID,
			&summary.Status,
			&summary.DeliveryCost,
			&summary.TaxPercent,
			&summary.ItemCount,
			&summary.CreatedAt,
			&summary.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		ownerID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		summary.ID = orderID
		summary.CustomerID = ownerID
		orders = append(orders, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
