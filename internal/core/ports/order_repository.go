// Package ports defines repository interfaces for the storefront domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their lifecycle status.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its items and current status.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order aggregate by its unique identifier,
	// locking the order row for the duration of the current transaction.
	// Concurrent transactions loading the same order block until the first
	// one commits or rolls back, serializing lifecycle transitions per order.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllStaleCreated retrieves the identifiers of orders that have been
	// sitting in the created status since before the cutoff. Used by the
	// background expiry job.
	GetAllStaleCreated(ctx context.Context, cutoff time.Time) ([]kernel.UUID, error)
}
