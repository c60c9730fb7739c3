package queries

import (
	"context"
	"errors"

	"skybite/internal/core/domain/model/carrier"
	"skybite/internal/core/domain/model/kernel"
	"skybite/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetOrdersByCarrierQueryIsNotConstructed = errors.New(
	"GetOrdersByCarrierQuery must be created via NewGetOrdersByCarrierQuery constructor",
)

// GetOrdersByCarrierQuery retrieves the orders bound to one carrier, the
// deliveryman's or drone's run sheet. The kind is part of the key so a
// deliveryman id never matches drone listings and vice versa.
type GetOrdersByCarrierQuery struct {
	carrierID kernel.UUID
	kind      carrier.Kind

	guard guard.ConstructorGuard
}

// NewGetOrdersByCarrierQuery creates a query for a carrier's orders.
func NewGetOrdersByCarrierQuery(carrierID kernel.UUID, kind carrier.Kind) (GetOrdersByCarrierQuery, error) {
	if err := errors.Join(carrierID.Validate(), kind.Validate()); err != nil {
		return GetOrdersByCarrierQuery{}, err
	}

	return GetOrdersByCarrierQuery{
		carrierID: carrierID,
		kind:      kind,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByCarrierQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByCarrierQueryIsNotConstructed)
}

// CarrierID returns the carrier whose orders are listed.
func (q GetOrdersByCarrierQuery) CarrierID() kernel.UUID {
	return q.carrierID
}

// Kind returns the expected carrier kind.
func (q GetOrdersByCarrierQuery) Kind() carrier.Kind {
	return q.kind
}

// GetOrdersByCarrierQueryHandler executes the carrier run-sheet listing.
type GetOrdersByCarrierQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByCarrierQueryHandler creates a handler for carrier order queries.
func NewGetOrdersByCarrierQueryHandler(db *gorm.DB) GetOrdersByCarrierQueryHandler {
	return GetOrdersByCarrierQueryHandler{db: db}
}

// Handle returns the orders currently or previously bound to the carrier.
func (h GetOrdersByCarrierQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByCarrierQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE carrier_id = ? AND carrier_kind = ?
		ORDER BY id
	`, query.CarrierID().Bytes(), int(query.Kind())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}
