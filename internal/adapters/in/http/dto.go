package http

import (
	"skybite/internal/core/application/usecases/queries"
	"skybite/internal/core/domain/model/kernel"
	"skybite/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// newOrderRequest is the checkout payload. The customer id comes from the
// bearer token, not the body.
type newOrderRequest struct {
	RestaurantID string              `json:"restaurantId"`
	AddressID    string              `json:"addressId"`
	PaymentID    string              `json:"paymentId"`
	Items        []newOrderItemEntry `json:"items"`
}

type newOrderItemEntry struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
}

// updateOrderRequest carries the target status for the update endpoints.
type updateOrderRequest struct {
	Status string `json:"status"`
}

// assignCarrierRequest carries the carrier to bind on the manual assignment
// endpoints.
type assignCarrierRequest struct {
	CarrierID string `json:"carrierId"`
}

// newDroneRequest is the fleet registration payload.
type newDroneRequest struct {
	Name            string `json:"name"`
	BatteryLevel    int    `json:"batteryLevel"`
	MaxPayloadGrams int    `json:"maxPayloadGrams"`
}

// updateDroneRequest carries the new battery reading for PUT /drone/:id.
type updateDroneRequest struct {
	BatteryLevel int `json:"batteryLevel"`
}

// updateDroneStatusRequest carries the target status for PATCH
// /drone/:id/status.
type updateDroneStatusRequest struct {
	Status string `json:"status"`
}

// orderResponse is the JSON shape of one order in responses. The delivery
// address is deliberately omitted from list views.
type orderResponse struct {
	ID           string          `json:"id"`
	UserID       string          `json:"userId"`
	RestaurantID string          `json:"restaurantId"`
	PaymentID    string          `json:"paymentId"`
	Status       string          `json:"status"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	CarrierKind  *string         `json:"carrierKind,omitempty"`
	CarrierID    *string         `json:"carrierId,omitempty"`
}

func orderResponseFromReadModel(o queries.OrderResponse) orderResponse {
	resp := orderResponse{
		ID:           o.ID.String(),
		UserID:       o.UserID.String(),
		RestaurantID: o.RestaurantID.String(),
		PaymentID:    o.PaymentID.String(),
		Status:       o.Status,
		TotalAmount:  o.TotalAmount,
		CarrierKind:  o.CarrierKind,
	}
	if o.CarrierID != nil {
		id := o.CarrierID.String()
		resp.CarrierID = &id
	}
	return resp
}

func orderResponseFromAggregate(o *order.Order) orderResponse {
	resp := orderResponse{
		ID:           o.ID().String(),
		UserID:       o.UserID().String(),
		RestaurantID: o.RestaurantID().String(),
		PaymentID:    o.PaymentID().String(),
		Status:       o.Status().String(),
		TotalAmount:  o.TotalAmount().Amount(),
	}
	if ref := o.Carrier(); ref != nil {
		kind := ref.Kind().String()
		id := ref.ID().String()
		resp.CarrierKind = &kind
		resp.CarrierID = &id
	}
	return resp
}

func orderListResponse(orders []queries.OrderResponse) []orderResponse {
	resp := make([]orderResponse, len(orders))
	for i, o := range orders {
		resp[i] = orderResponseFromReadModel(o)
	}
	return resp
}

// droneResponse is the JSON shape of one fleet drone.
type droneResponse struct {
	ID              string `json:"id"`
	Kind            string `json:"kind"`
	Name            string `json:"name"`
	Status          string `json:"status"`
	BatteryLevel    int    `json:"batteryLevel"`
	MaxPayloadGrams int    `json:"maxPayloadGrams"`
}

func droneResponseFromReadModel(c queries.CarrierResponse) droneResponse {
	return droneResponse{
		ID:              c.ID.String(),
		Kind:            c.Kind,
		Name:            c.Name,
		Status:          c.Status,
		BatteryLevel:    c.BatteryLevel,
		MaxPayloadGrams: c.MaxPayloadGrams,
	}
}

func pathID(raw string) (kernel.UUID, error) {
	return kernel.UUIDFromString(raw)
}
