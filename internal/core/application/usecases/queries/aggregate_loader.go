package queries

import (
	"context"
	"time"

	"sales/internal/core/domain/model/catalog"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Totals in the read models are live-computed from the persisted rows.
// These loaders rebuild domain aggregates straight from SQL so the query
// side reuses the pricing function instead of re-deriving the formulas.

func loadOrderAggregates(
	ctx context.Context,
	db *gorm.DB,
	filterSQL string,
	args ...any,
) ([]*order.Order, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			status,
			delivery_cost,
			tax_percent,
			created_at,
			updated_at
		FROM orders
	`+filterSQL, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type orderRow struct {
		id           kernel.UUID
		customerID   kernel.UUID
		status       order.Status
		deliveryCost decimal.Decimal
		taxPercent   decimal.Decimal
		createdAt    time.Time
		updatedAt    time.Time
	}

	orderRows := make([]orderRow, 0)
	for rows.Next() {
		var row orderRow
		var id, customerID uuid.UUID
		var status string

		err = rows.Scan(
			&id,
			&customerID,
			&status,
			&row.deliveryCost,
			&row.taxPercent,
			&row.createdAt,
			&row.updatedAt,
		)
		if err != nil {
			return nil, err
		}

		if row.id, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if row.customerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		if row.status, err = order.StatusFromString(status); err != nil {
			return nil, err
		}
		orderRows = append(orderRows, row)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	aggregates := make([]*order.Order, 0, len(orderRows))
	for _, row := range orderRows {
		items, itemsErr := loadOrderItems(ctx, db, row.id)
		if itemsErr != nil {
			return nil, itemsErr
		}

		aggregate, restoreErr := order.RestoreOrder(
			row.id,
			row.customerID,
			row.status,
			row.deliveryCost,
			row.taxPercent,
			items,
			row.createdAt,
			row.updatedAt,
		)
		if restoreErr != nil {
			return nil, restoreErr
		}
		aggregates = append(aggregates, aggregate)
	}

	return aggregates, nil
}

func loadOrderItems(ctx context.Context, db *gorm.DB, orderID kernel.UUID) ([]*order.Item, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			quantity,
			price
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*order.Item, 0)
	for rows.Next() {
		var productID uuid.UUID
		var quantity int
		var price decimal.Decimal

		if err = rows.Scan(&productID, &quantity, &price); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}

		item, itemErr := order.RestoreItem(id, quantity, price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func loadCustomerAggregate(ctx context.Context, db *gorm.DB, id kernel.UUID) (*catalog.Customer, error) {
	row := db.WithContext(ctx).Raw(`
		SELECT
			id,
			full_name,
			email,
			company_name,
			phone,
			discount_percent,
			registered_at
		FROM customers
		WHERE id = ?
	`, id.Bytes()).Row()

	var rawID uuid.UUID
	var fullName, email, phone string
	var companyName *string
	var discountPercent decimal.Decimal
	var registeredAt time.Time

	if err := row.Scan(&rawID, &fullName, &email, &companyName,
		&phone, &discountPercent, &registeredAt); err != nil {
		return nil, errs.NewObjectNotFoundErrorWithCause("customer", id.String(), err)
	}

	customerID, err := kernel.UUIDFromBytes(rawID[:])
	if err != nil {
		return nil, err
	}

	return catalog.RestoreCustomer(customerID, fullName, email, companyName,
		phone, discountPercent, registeredAt)
}

func loadProductAggregates(
	ctx context.Context,
	db *gorm.DB,
	ids []kernel.UUID,
) (map[kernel.UUID]*catalog.Product, error) {
	if len(ids) == 0 {
		return map[kernel.UUID]*catalog.Product{}, nil
	}

	rawIDs := make([]any, 0, len(ids))
	for _, id := range ids {
		rawIDs = append(rawIDs, id.Bytes())
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			price,
			stock_quantity,
			is_active,
			discount_percent
		FROM products
		WHERE id IN ?
	`, rawIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make(map[kernel.UUID]*catalog.Product)
	for rows.Next() {
		var rawID uuid.UUID
		var name, description string
		var price, discountPercent decimal.Decimal
		var stockQuantity int
		var isActive bool

		if err = rows.Scan(&rawID, &name, &description, &price,
			&stockQuantity, &isActive, &discountPercent); err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(rawID[:])
		if idErr != nil {
			return nil, idErr
		}

		product, restoreErr := catalog.RestoreProduct(productID, name, description,
			price, stockQuantity, isActive, discountPercent)
		if restoreErr != nil {
			return nil, restoreErr
		}
		products[productID] = product
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func productIDsOf(aggregate *order.Order) []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		ids = append(ids, item.ProductID())
	}
	return ids
}
