package ports

import (
	"context"

	"sales/internal/core/domain/model/catalog"
	"sales/internal/core/domain/model/kernel"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	// The product must be valid and not already exist in the repository.
	Add(ctx context.Context, product *catalog.Product) error

	// Update persists changes to an existing product aggregate.
	// The product must exist in the repository and be valid.
	Update(ctx context.Context, product *catalog.Product) error

	// Delete removes a product from storage.
	// Fails with errs.ObjectIsReferencedError when any order item still
	// references the product.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a product aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error)

	// GetByIDs retrieves the products for the given identifiers, keyed by ID.
	// Missing identifiers are simply absent from the result; callers decide
	// whether absence is an error.
	GetByIDs(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*catalog.Product, error)
}
