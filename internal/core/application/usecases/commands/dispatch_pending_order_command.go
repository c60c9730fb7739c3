package commands

import (
	"errors"

	"skybite/internal/pkg/guard"
)

var ErrDispatchPendingOrderCommandIsNotConstructed = errors.New(
	"DispatchPendingOrderCommand must be created via NewDispatchPendingOrderCommand constructor",
)

// DispatchPendingOrderCommand triggers automatic assignment of an available
// drone to the oldest order still waiting for a carrier. This is the
// scheduled counterpart of the manual per-order assignment endpoints.
type DispatchPendingOrderCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchPendingOrderCommand creates a new command to trigger drone dispatch.
// This is a parameterless command; the handler picks the order and the drone.
func NewDispatchPendingOrderCommand() DispatchPendingOrderCommand {
	return DispatchPendingOrderCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *DispatchPendingOrderCommand) Validate() error {
	return c.guard.Validate(
		ErrDispatchPendingOrderCommandIsNotConstructed,
	)
}
