package queries

import (
	"context"
	"errors"

	"skybite/internal/core/domain/model/order"
	"skybite/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetDeliveredOrdersQueryIsNotConstructed = errors.New(
	"GetDeliveredOrdersQuery must be created via NewGetDeliveredOrdersQuery constructor",
)

// GetDeliveredOrdersQuery retrieves all successfully completed orders.
type GetDeliveredOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDeliveredOrdersQuery creates a parameterless query for delivered orders.
func NewGetDeliveredOrdersQuery() GetDeliveredOrdersQuery {
	return GetDeliveredOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveredOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveredOrdersQueryIsNotConstructed)
}

// GetDeliveredOrdersQueryHandler executes the delivered-orders listing.
type GetDeliveredOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveredOrdersQueryHandler creates a handler for delivered order queries.
func NewGetDeliveredOrdersQueryHandler(db *gorm.DB) GetDeliveredOrdersQueryHandler {
	return GetDeliveredOrdersQueryHandler{db: db}
}

// Handle returns every order in the Delivered status.
func (h GetDeliveredOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveredOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE status = ?
		ORDER BY id
	`, int(order.Delivered)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}
