package commands

import (
	"errors"

	"skybite/internal/core/domain/model/kernel"
	"skybite/internal/pkg/guard"
)

var ErrDeleteCarrierCommandIsNotConstructed = errors.New(
	"DeleteCarrierCommand must be created via NewDeleteCarrierCommand constructor",
)

// DeleteCarrierCommand represents a request to retire a carrier from the
// fleet permanently.
type DeleteCarrierCommand struct { //nolint:recvcheck //using for validation
	carrierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteCarrierCommand creates a command to remove a carrier.
func NewDeleteCarrierCommand(carrierID kernel.UUID) (DeleteCarrierCommand, error) {
	command := DeleteCarrierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCarrierID(carrierID); err != nil {
		return DeleteCarrierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCarrierCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCarrierCommandIsNotConstructed)
}

// CarrierID returns the identifier of the carrier to remove.
func (c DeleteCarrierCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

func (c *DeleteCarrierCommand) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}

	c.carrierID = carrierID
	return nil
}
