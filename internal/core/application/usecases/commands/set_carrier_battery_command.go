package commands

import (
	"errors"

	"skybite/internal/core/domain/model/kernel"
	"skybite/internal/pkg/errs"
	"skybite/internal/pkg/guard"
)

var ErrSetCarrierBatteryCommandIsNotConstructed = errors.New(
	"SetCarrierBatteryCommand must be created via NewSetCarrierBatteryCommand constructor",
)

// SetCarrierBatteryCommand represents a telemetry update of a drone's
// battery level. Only drones report charge; applying it to a deliveryman
// fails in the aggregate.
type SetCarrierBatteryCommand struct { //nolint:recvcheck //using for validation
	carrierID    kernel.UUID
	batteryLevel int

	guard guard.ConstructorGuard
}

// NewSetCarrierBatteryCommand creates a command to record a battery reading.
// The level must be in the 0..100 range.
func NewSetCarrierBatteryCommand(carrierID kernel.UUID, batteryLevel int) (SetCarrierBatteryCommand, error) {
	command := SetCarrierBatteryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCarrierID(carrierID),
		command.setBatteryLevel(batteryLevel),
	); err != nil {
		return SetCarrierBatteryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetCarrierBatteryCommand) Validate() error {
	return c.guard.Validate(ErrSetCarrierBatteryCommandIsNotConstructed)
}

// CarrierID returns the identifier of the drone.
func (c SetCarrierBatteryCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

// BatteryLevel returns the reported charge percentage.
func (c SetCarrierBatteryCommand) BatteryLevel() int {
	return c.batteryLevel
}

func (c *SetCarrierBatteryCommand) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}

	c.carrierID = carrierID
	return nil
}

func (c *SetCarrierBatteryCommand) setBatteryLevel(batteryLevel int) error {
	if batteryLevel < 0 || batteryLevel > 100 {
		return errs.NewValueIsOutOfRangeError("batteryLevel", batteryLevel, 0, 100)
	}

	c.batteryLevel = batteryLevel
	return nil
}
