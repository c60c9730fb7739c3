package commands

import (
	"errors"

	"skybite/internal/core/domain/model/carrier"
	"skybite/internal/core/domain/model/kernel"
	"skybite/internal/pkg/guard"
)

var ErrAssignCarrierCommandIsNotConstructed = errors.New(
	"AssignCarrierCommand must be created via NewAssignCarrierCommand constructor",
)

// AssignCarrierCommand represents a request to bind a specific carrier
// (deliveryman or drone) to a specific order.
type AssignCarrierCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	carrierID kernel.UUID
	kind      carrier.Kind

	guard guard.ConstructorGuard
}

// NewAssignCarrierCommand creates a command to assign a carrier to an order.
// Both identifiers must be valid and the kind must be a known carrier kind.
func NewAssignCarrierCommand(orderID, carrierID kernel.UUID, kind carrier.Kind) (AssignCarrierCommand, error) {
	command := AssignCarrierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCarrierID(carrierID),
		command.setKind(kind),
	); err != nil {
		return AssignCarrierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignCarrierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCarrierCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to assign.
func (c AssignCarrierCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CarrierID returns the identifier of the carrier to bind.
func (c AssignCarrierCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

// Kind returns the expected kind of the carrier.
func (c AssignCarrierCommand) Kind() carrier.Kind {
	return c.kind
}

func (c *AssignCarrierCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignCarrierCommand) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}

	c.carrierID = carrierID
	return nil
}

func (c *AssignCarrierCommand) setKind(kind carrier.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}
