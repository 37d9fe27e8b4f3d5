// Package ports defines repository interfaces for the sales domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"sales/internal/core/domain/model/catalog"
	"sales/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	// Add persists a new customer aggregate to storage.
	// The customer must be valid and not already exist in the repository.
	Add(ctx context.Context, customer *catalog.Customer) error

	// Update persists changes to an existing customer aggregate.
	// The customer must exist in the repository and be valid.
	Update(ctx context.Context, customer *catalog.Customer) error

	// Delete removes a customer from storage.
	// Fails with errs.ObjectIsReferencedError when any order still references
	// the customer.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a customer aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Customer, error)
}
