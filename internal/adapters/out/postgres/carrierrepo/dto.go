// Package carrierrepo provides data transfer objects and mapping functions
// for carrier persistence. Deliverymen and drones share a single table,
// discriminated by the kind column.
package carrierrepo

import (
	"skybite/internal/core/domain/model/carrier"
	"skybite/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CarrierDTO represents the database structure for persisting carrier
// aggregates. The version column backs the optimistic concurrency check
// in Update.
type CarrierDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind            int       `gorm:"type:int;not null;index"`
	Name            string    `gorm:"type:varchar(255);not null"`
	Status          int       `gorm:"type:int;not null;index"`
	BatteryLevel    int       `gorm:"type:int;not null"`
	MaxPayloadGrams int       `gorm:"type:int;not null"`
	Version         int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for carrier entities.
func (CarrierDTO) TableName() string {
	return "carriers"
}

// fromDomain converts a carrier domain aggregate to its database representation.
func fromDomain(aggregate *carrier.Carrier) CarrierDTO {
	return CarrierDTO{
		ID:              aggregate.ID().Bytes(),
		Kind:            int(aggregate.Kind()),
		Name:            aggregate.Name(),
		Status:          int(aggregate.Status()),
		BatteryLevel:    aggregate.BatteryLevel(),
		MaxPayloadGrams: aggregate.MaxPayloadGrams(),
		Version:         aggregate.Version(),
	}
}

// toDomain converts a database DTO to a carrier domain aggregate.
func toDomain(dto CarrierDTO) (*carrier.Carrier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return carrier.RestoreCarrier(id, carrier.Kind(dto.Kind), dto.Name,
		carrier.Status(dto.Status), dto.BatteryLevel, dto.MaxPayloadGrams, dto.Version)
}
