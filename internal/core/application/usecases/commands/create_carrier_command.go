package commands

import (
	"errors"

	"skybite/internal/core/domain/model/carrier"
	"skybite/internal/core/domain/model/kernel"
	"skybite/internal/pkg/errs"
	"skybite/internal/pkg/guard"
)

var ErrCreateCarrierCommandIsNotConstructed = errors.New(
	"CreateCarrierCommand must be created via NewCreateCarrierCommand constructor",
)

// CreateCarrierCommand represents a request to register a new carrier in the
// fleet. Drones carry battery and payload capabilities; deliverymen must
// leave both at zero.
type CreateCarrierCommand struct { //nolint:recvcheck //using for validation
	carrierID       kernel.UUID
	kind            carrier.Kind
	name            string
	batteryLevel    int
	maxPayloadGrams int

	guard guard.ConstructorGuard
}

// NewCreateCarrierCommand creates a command to register a carrier.
// The carrier-kind capability rules are enforced later by the aggregate;
// the command only checks identifiers, kind, and name.
func NewCreateCarrierCommand(
	carrierID kernel.UUID,
	kind carrier.Kind,
	name string,
	batteryLevel int,
	maxPayloadGrams int,
) (CreateCarrierCommand, error) {
	command := CreateCarrierCommand{
		guard:           guard.NewConstructorGuard(),
		batteryLevel:    batteryLevel,
		maxPayloadGrams: maxPayloadGrams,
	}

	if err := errors.Join(
		command.setCarrierID(carrierID),
		command.setKind(kind),
		command.setName(name),
	); err != nil {
		return CreateCarrierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCarrierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCarrierCommandIsNotConstructed)
}

// CarrierID returns the identifier for the new carrier.
func (c CreateCarrierCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

// Kind returns the carrier kind.
func (c CreateCarrierCommand) Kind() carrier.Kind {
	return c.kind
}

// Name returns the display name of the carrier.
func (c CreateCarrierCommand) Name() string {
	return c.name
}

// BatteryLevel returns the initial battery charge for drones.
func (c CreateCarrierCommand) BatteryLevel() int {
	return c.batteryLevel
}

// MaxPayloadGrams returns the payload limit for drones.
func (c CreateCarrierCommand) MaxPayloadGrams() int {
	return c.maxPayloadGrams
}

func (c *CreateCarrierCommand) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}

	c.carrierID = carrierID
	return nil
}

func (c *CreateCarrierCommand) setKind(kind carrier.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *CreateCarrierCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}
