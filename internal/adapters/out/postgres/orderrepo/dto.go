// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"skybite/internal/core/domain/model/carrier"
	"skybite/internal/core/domain/model/kernel"
	"skybite/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The carrier binding is a nullable kind-tagged pair, and the version column
// backs the optimistic concurrency check in Update.
type OrderDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	RestaurantID uuid.UUID       `gorm:"type:uuid;not null;index"`
	AddressID    uuid.UUID       `gorm:"type:uuid;not null"`
	PaymentID    uuid.UUID       `gorm:"type:uuid;not null"`
	TotalAmount  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status       int             `gorm:"type:int;not null;index"`
	CarrierKind  *int            `gorm:"type:int"`
	CarrierID    *uuid.UUID      `gorm:"type:uuid;index"`
	Version      int             `gorm:"type:int;not null"`
	Items        []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one ordered line with its checkout-time price
// snapshot. Keyed by order and product: a product appears at most once per
// order.
type OrderItemDTO struct {
	OrderID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Quantity  int             `gorm:"type:int;not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName specifies the database table name for order item entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	var carrierKind *int
	var carrierID *uuid.UUID
	if ref := aggregate.Carrier(); ref != nil {
		kind := int(ref.Kind())
		carrierKind = &kind
		raw := ref.ID().Bytes()
		carrierID = &raw
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:   orderID,
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Amount(),
		})
	}

	return OrderDTO{
		ID:           orderID,
		UserID:       aggregate.UserID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
		AddressID:    aggregate.AddressID().Bytes(),
		PaymentID:    aggregate.PaymentID().Bytes(),
		TotalAmount:  aggregate.TotalAmount().Amount(),
		Status:       int(aggregate.Status()),
		CarrierKind:  carrierKind,
		CarrierID:    carrierID,
		Version:      aggregate.Version(),
		Items:        items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}
	addressID, err := kernel.UUIDFromBytes(dto.AddressID[:])
	if err != nil {
		return nil, err
	}
	paymentID, err := kernel.UUIDFromBytes(dto.PaymentID[:])
	if err != nil {
		return nil, err
	}

	totalAmount, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var carrierRef *order.CarrierRef
	if dto.CarrierKind != nil && dto.CarrierID != nil {
		carrierID, refErr := kernel.UUIDFromBytes((*dto.CarrierID)[:])
		if refErr != nil {
			return nil, refErr
		}
		ref, refErr := order.NewCarrierRef(carrier.Kind(*dto.CarrierKind), carrierID)
		if refErr != nil {
			return nil, refErr
		}
		carrierRef = &ref
	}

	return order.RestoreOrder(id, userID, restaurantID, addressID, paymentID,
		items, totalAmount, order.Status(dto.Status), carrierRef, dto.Version)
}

// itemToDomain converts an order item DTO to its domain value object.
func itemToDomain(dto OrderItemDTO) (order.Item, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.Item{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(productID, dto.Quantity, unitPrice)
}
