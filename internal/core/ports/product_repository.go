package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
// Provides methods for storing, retrieving, and querying catalog entities
// with their stock levels.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	// The product must be valid and its SKU must be unique.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate.
	// The product must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAllByIDs retrieves the product aggregates for the given identifiers,
	// locking their rows for the duration of the current transaction.
	// Returns *errs.ObjectNotFoundError if any identifier is unknown.
	// Used when reserving or releasing stock so that concurrent confirmations
	// of overlapping orders are serialized.
	GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)
}
