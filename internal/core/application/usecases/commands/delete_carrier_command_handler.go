package commands

import (
	"context"
	"fmt"

	"skybite/internal/core/domain/model/carrier"
	"skybite/internal/pkg/errs"
)

// DeleteCarrierCommandHandler removes a carrier from the fleet.
// A carrier that is mid-delivery cannot be removed; release it first by
// completing or cancelling the order it is bound to.
type DeleteCarrierCommandHandler struct {
	uowFactory CarrierUoWFactory
}

// NewDeleteCarrierCommandHandler creates a handler for carrier removal.
func NewDeleteCarrierCommandHandler(uowFactory CarrierUoWFactory) DeleteCarrierCommandHandler {
	return DeleteCarrierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the carrier removal command.
func (h DeleteCarrierCommandHandler) Handle(ctx context.Context, command DeleteCarrierCommand) error {
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

	if carrierAggregate.Status() == carrier.InDelivery {
		return errs.NewResourceConflictErrorWithCause("carrier", command.CarrierID().String(),
			fmt.Errorf("carrier is %s and cannot be removed", carrierAggregate.Status()))
	}

	if err = carrierRepo.Delete(ctx, command.CarrierID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
