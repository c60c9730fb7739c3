package queries

import (
	"context"
	"errors"

	"skybite/internal/core/domain/model/carrier"
	"skybite/internal/core/domain/model/kernel"
	"skybite/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetCarriersQueryIsNotConstructed = errors.New(
	"GetCarriersQuery must be created via NewGetCarriersQuery constructor",
)

// GetCarriersQuery retrieves the fleet of one carrier kind, optionally
// narrowed to carriers that are ready to take a delivery.
type GetCarriersQuery struct {
	kind          carrier.Kind
	onlyAvailable bool

	guard guard.ConstructorGuard
}

// NewGetCarriersQuery creates a query for the fleet listing.
func NewGetCarriersQuery(kind carrier.Kind, onlyAvailable bool) (GetCarriersQuery, error) {
	if err := kind.Validate(); err != nil {
		return GetCarriersQuery{}, err
	}

	return GetCarriersQuery{
		kind:          kind,
		onlyAvailable: onlyAvailable,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCarriersQuery) Validate() error {
	return q.guard.Validate(ErrGetCarriersQueryIsNotConstructed)
}

// Kind returns the carrier kind to list.
func (q GetCarriersQuery) Kind() carrier.Kind {
	return q.kind
}

// OnlyAvailable reports whether the listing is narrowed to available carriers.
func (q GetCarriersQuery) OnlyAvailable() bool {
	return q.onlyAvailable
}

// CarrierResponse is the read model for fleet listings.
type CarrierResponse struct {
	ID              kernel.UUID
	Kind            string
	Name            string
	Status          string
	BatteryLevel    int
	MaxPayloadGrams int
}

// GetCarriersQueryHandler executes the fleet listing.
type GetCarriersQueryHandler struct {
	db *gorm.DB
}

// NewGetCarriersQueryHandler creates a handler for fleet queries.
func NewGetCarriersQueryHandler(db *gorm.DB) GetCarriersQueryHandler {
	return GetCarriersQueryHandler{db: db}
}

// Handle returns the fleet of the requested kind sorted by name.
func (h GetCarriersQueryHandler) Handle(
	ctx context.Context,
	query GetCarriersQuery,
) ([]CarrierResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			kind,
			name,
			status,
			battery_level,
			max_payload_grams
		FROM carriers
		WHERE kind = ?
		ORDER BY name`
	args := []any{int(query.Kind())}

	if query.OnlyAvailable() {
		sql = `
		SELECT
			id,
			kind,
			name,
			status,
			battery_level,
			max_payload_grams
		FROM carriers
		WHERE kind = ? AND status = ?
		ORDER BY name`
		args = append(args, int(carrier.Available))
	}

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	carriers := make([]CarrierResponse, 0)

	for rows.Next() {
		var (
			resp         CarrierResponse
			id           uuid.UUID
			kind, status int
		)

		if err = rows.Scan(
			&id,
			&kind,
			&resp.Name,
			&status,
			&resp.BatteryLevel,
			&resp.MaxPayloadGrams,
		); err != nil {
			return nil, err
		}

		carrierID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = carrierID
		resp.Kind = carrier.Kind(kind).String()
		resp.Status = carrier.Status(status).String()

		carriers = append(carriers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return carriers, nil
}
