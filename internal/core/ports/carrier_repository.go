package ports

import (
	"context"

	"skybite/internal/core/domain/model/carrier"
	"skybite/internal/core/domain/model/kernel"
)

// CarrierRepository defines the persistence contract for carrier aggregates,
// covering both deliverymen and drones.
type CarrierRepository interface {
	// Add persists a new carrier aggregate to storage.
	// The carrier must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *carrier.Carrier) error

	// Update persists changes to an existing carrier aggregate using an
	// optimistic concurrency check. Returns errs.ErrResourceConflict when
	// the stored version no longer matches the one the aggregate was
	// loaded with, so two assignments racing for the same carrier resolve
	// to exactly one winner.
	Update(ctx context.Context, aggregate *carrier.Carrier) error

	// Get retrieves a carrier aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error)

	// GetAllAvailable retrieves all carriers of the given kind that are in
	// the Available status and ready to take a delivery.
	GetAllAvailable(ctx context.Context, kind carrier.Kind) ([]*carrier.Carrier, error)

	// GetAll retrieves every carrier of the given kind regardless of status.
	GetAll(ctx context.Context, kind carrier.Kind) ([]*carrier.Carrier, error)

	// Delete removes a carrier from storage. Returns errs.ErrObjectNotFound
	// when the carrier does not exist.
	Delete(ctx context.Context, id kernel.UUID) error
}
