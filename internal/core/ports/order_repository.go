// Package ports defines repository interfaces for the marketplace domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"skybite/internal/core/domain/model/kernel"
	"skybite/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate using an
	// optimistic concurrency check. Returns errs.ErrResourceConflict when
	// the stored version no longer matches the one the aggregate was
	// loaded with, and errs.ErrObjectNotFound when the order is gone.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its items, status, and carrier binding.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetFirstUnassigned retrieves the oldest order that is waiting for a
	// carrier: non-terminal, no carrier bound. Used by the dispatch job.
	GetFirstUnassigned(ctx context.Context) (*order.Order, error)
}
