package commands

import (
	"errors"

	"skybite/internal/core/domain/model/carrier"
	"skybite/internal/core/domain/model/kernel"
	"skybite/internal/pkg/guard"
)

var ErrSetCarrierStatusCommandIsNotConstructed = errors.New(
	"SetCarrierStatusCommand must be created via NewSetCarrierStatusCommand constructor",
)

// SetCarrierStatusCommand represents an operator request to change a
// carrier's fleet status (take a drone offline, send it to maintenance,
// bring it back). Delivery claims never go through this command; entering
// or leaving InDelivery is reserved for the assignment flow.
type SetCarrierStatusCommand struct { //nolint:recvcheck //using for validation
	carrierID kernel.UUID
	newStatus carrier.Status

	guard guard.ConstructorGuard
}

// NewSetCarrierStatusCommand creates a command to change a carrier's status.
func NewSetCarrierStatusCommand(carrierID kernel.UUID, newStatus carrier.Status) (SetCarrierStatusCommand, error) {
	command := SetCarrierStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCarrierID(carrierID),
		command.setNewStatus(newStatus),
	); err != nil {
		return SetCarrierStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetCarrierStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetCarrierStatusCommandIsNotConstructed)
}

// CarrierID returns the identifier of the carrier to change.
func (c SetCarrierStatusCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

// NewStatus returns the target fleet status.
func (c SetCarrierStatusCommand) NewStatus() carrier.Status {
	return c.newStatus
}

func (c *SetCarrierStatusCommand) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}

	c.carrierID = carrierID
	return nil
}

func (c *SetCarrierStatusCommand) setNewStatus(newStatus carrier.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}
