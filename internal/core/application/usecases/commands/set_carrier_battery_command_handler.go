package commands

import (
	"context"
)

// SetCarrierBatteryCommandHandler records a drone battery reading.
type SetCarrierBatteryCommandHandler struct {
	uowFactory CarrierUoWFactory
}

// NewSetCarrierBatteryCommandHandler creates a handler for battery updates.
func NewSetCarrierBatteryCommandHandler(uowFactory CarrierUoWFactory) SetCarrierBatteryCommandHandler {
	return SetCarrierBatteryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the battery update command.
func (h SetCarrierBatteryCommandHandler) Handle(ctx context.Context, command SetCarrierBatteryCommand) error {
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

	if err = carrierAggregate.SetBatteryLevel(command.BatteryLevel()); err != nil {
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
