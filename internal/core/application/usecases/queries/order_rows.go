// Package queries contains read operations over the order and carrier
// storage. Read models bypass the domain aggregates and project columns
// straight from SQL for the listings the marketplace frontend consumes.
// The delivery address is deliberately absent from list views.
package queries

import (
	"database/sql"

	"skybite/internal/core/domain/model/carrier"
	"skybite/internal/core/domain/model/kernel"
	"skybite/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderResponse is the shared read model for order listings.
type OrderResponse struct {
	ID           kernel.UUID
	UserID       kernel.UUID
	RestaurantID kernel.UUID
	PaymentID    kernel.UUID
	Status       string
	TotalAmount  decimal.Decimal
	CarrierKind  *string
	CarrierID    *kernel.UUID
}

// orderColumns is the projection every order listing selects.
const orderColumns = `
		id,
		user_id,
		restaurant_id,
		payment_id,
		status,
		total_amount,
		carrier_kind,
		carrier_id`

// scanOrderRows maps the orderColumns projection into read models.
func scanOrderRows(rows *sql.Rows) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	for rows.Next() {
		var (
			id, userID, restaurantID, paymentID uuid.UUID
			status                              int
			totalAmount                         decimal.Decimal
			carrierKind                         sql.NullInt32
			carrierID                           uuid.NullUUID
		)

		if err := rows.Scan(
			&id,
			&userID,
			&restaurantID,
			&paymentID,
			&status,
			&totalAmount,
			&carrierKind,
			&carrierID,
		); err != nil {
			return nil, err
		}

		resp, err := buildOrderResponse(id, userID, restaurantID, paymentID,
			status, totalAmount, carrierKind, carrierID)
		if err != nil {
			return nil, err
		}

		orders = append(orders, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func buildOrderResponse(
	id, userID, restaurantID, paymentID uuid.UUID,
	status int,
	totalAmount decimal.Decimal,
	carrierKind sql.NullInt32,
	carrierID uuid.NullUUID,
) (OrderResponse, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	ownerID, err := kernel.UUIDFromBytes(userID[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resID, err := kernel.UUIDFromBytes(restaurantID[:])
	if err != nil {
		return OrderResponse{}, err
	}
	payID, err := kernel.UUIDFromBytes(paymentID[:])
	if err != nil {
		return OrderResponse{}, err
	}

	resp := OrderResponse{
		ID:           orderID,
		UserID:       ownerID,
		RestaurantID: resID,
		PaymentID:    payID,
		Status:       order.Status(status).String(),
		TotalAmount:  totalAmount,
	}

	if carrierKind.Valid {
		kindStr := carrier.Kind(carrierKind.Int32).String()
		resp.CarrierKind = &kindStr
	}
	if carrierID.Valid {
		cID, idErr := kernel.UUIDFromBytes(carrierID.UUID[:])
		if idErr != nil {
			return OrderResponse{}, idErr
		}
		resp.CarrierID = &cID
	}

	return resp, nil
}
