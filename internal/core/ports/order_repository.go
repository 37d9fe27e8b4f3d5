package ports

import (
	"context"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are stored together with their line items; the repository always
// loads and saves the aggregate as a whole.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Line items are replaced wholesale with the aggregate's current set.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with all line items in insertion order.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
