package queries

import (
	"context"
	"database/sql"
	"errors"

	"skybite/internal/core/domain/model/carrier"
	"skybite/internal/core/domain/model/kernel"
	"skybite/internal/pkg/errs"
	"skybite/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetCarrierQueryIsNotConstructed = errors.New(
	"GetCarrierQuery must be created via NewGetCarrierQuery constructor",
)

// GetCarrierQuery retrieves a single carrier read model by its identifier,
// constrained to one kind so a drone endpoint cannot leak deliverymen.
type GetCarrierQuery struct {
	carrierID kernel.UUID
	kind      carrier.Kind

	guard guard.ConstructorGuard
}

// NewGetCarrierQuery creates a query for one carrier of the given kind.
func NewGetCarrierQuery(carrierID kernel.UUID, kind carrier.Kind) (GetCarrierQuery, error) {
	if err := errors.Join(carrierID.Validate(), kind.Validate()); err != nil {
		return GetCarrierQuery{}, err
	}

	return GetCarrierQuery{
		carrierID: carrierID,
		kind:      kind,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCarrierQuery) Validate() error {
	return q.guard.Validate(ErrGetCarrierQueryIsNotConstructed)
}

// CarrierID returns the carrier to fetch.
func (q GetCarrierQuery) CarrierID() kernel.UUID {
	return q.carrierID
}

// Kind returns the expected carrier kind.
func (q GetCarrierQuery) Kind() carrier.Kind {
	return q.kind
}

// GetCarrierQueryHandler executes the single-carrier lookup.
type GetCarrierQueryHandler struct {
	db *gorm.DB
}

// NewGetCarrierQueryHandler creates a handler for single-carrier queries.
func NewGetCarrierQueryHandler(db *gorm.DB) GetCarrierQueryHandler {
	return GetCarrierQueryHandler{db: db}
}

// Handle returns the carrier read model. An id that exists under a different
// kind maps to not found, same as an unknown id.
func (h GetCarrierQueryHandler) Handle(
	ctx context.Context,
	query GetCarrierQuery,
) (CarrierResponse, error) {
	if err := query.Validate(); err != nil {
		return CarrierResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			kind,
			name,
			status,
			battery_level,
			max_payload_grams
		FROM carriers
		WHERE id = ? AND kind = ?
	`, query.CarrierID().Bytes(), int(query.Kind())).Row()

	var (
		resp         CarrierResponse
		id           uuid.UUID
		kind, status int
	)

	err := row.Scan(&id, &kind, &resp.Name, &status, &resp.BatteryLevel, &resp.MaxPayloadGrams)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CarrierResponse{}, errs.NewObjectNotFoundError(
				query.Kind().String(), query.CarrierID().String())
		}
		return CarrierResponse{}, err
	}

	carrierID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return CarrierResponse{}, err
	}
	resp.ID = carrierID
	resp.Kind = carrier.Kind(kind).String()
	resp.Status = carrier.Status(status).String()

	return resp, nil
}
