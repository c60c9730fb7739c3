package queries

import (
	"context"
	"errors"

	"skybite/internal/core/domain/model/order"
	"skybite/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetAssignedOrdersQueryIsNotConstructed = errors.New(
	"GetAssignedOrdersQuery must be created via NewGetAssignedOrdersQuery constructor",
)

// GetAssignedOrdersQuery retrieves in-flight orders that already have a
// carrier bound: accepted work in the delivery pipeline. Together with the
// unassigned listing it partitions the non-terminal orders.
type GetAssignedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAssignedOrdersQuery creates a parameterless query for assigned orders.
func NewGetAssignedOrdersQuery() GetAssignedOrdersQuery {
	return GetAssignedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAssignedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignedOrdersQueryIsNotConstructed)
}

// GetAssignedOrdersQueryHandler executes the assigned-orders listing.
type GetAssignedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignedOrdersQueryHandler creates a handler for assigned order queries.
func NewGetAssignedOrdersQueryHandler(db *gorm.DB) GetAssignedOrdersQueryHandler {
	return GetAssignedOrdersQueryHandler{db: db}
}

// Handle returns non-terminal orders with a carrier bound.
func (h GetAssignedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAssignedOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE carrier_id IS NOT NULL AND status NOT IN (?, ?)
		ORDER BY id
	`, int(order.Delivered), int(order.Cancelled)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}
