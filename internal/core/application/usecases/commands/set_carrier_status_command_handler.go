package commands

import (
	"context"
)

// SetCarrierStatusCommandHandler applies an operator status change to a
// carrier. The aggregate rejects moves in or out of InDelivery and
// maintenance for non-drones.
type SetCarrierStatusCommandHandler struct {
	uowFactory CarrierUoWFactory
}

// NewSetCarrierStatusCommandHandler creates a handler for fleet status changes.
func NewSetCarrierStatusCommandHandler(uowFactory CarrierUoWFactory) SetCarrierStatusCommandHandler {
	return SetCarrierStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
func (h SetCarrierStatusCommandHandler) Handle(ctx context.Context, command SetCarrierStatusCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	carrierRepo := uow.CarrierRepository()

	carrierAggregate, err := carrierRepo.Get(ctx, command.CarrierID())
	if err != nil {
		return err
	}

	if err = carrierAggregate.ChangeStatus(command.NewStatus()); err != nil {
		return err
	}

	if err = carrierRepo.Update(ctx, carrierAggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
