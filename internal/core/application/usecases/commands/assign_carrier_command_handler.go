package commands

import (
	"context"

	"skybite/internal/core/domain/model/order"
	"skybite/internal/pkg/errs"
)

// AssignCarrierCommandHandler binds a chosen carrier to an order.
// The carrier is claimed (Available -> InDelivery) and the order gets a
// reference to it; both updates happen in one transaction, so two requests
// racing for the same carrier or the same order resolve to exactly one
// winner and the loser gets a conflict.
type AssignCarrierCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignCarrierCommandHandler creates a handler for carrier assignment.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewAssignCarrierCommandHandler(uowFactory UoWFactory) AssignCarrierCommandHandler {
	return AssignCarrierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the carrier assignment command.
// Loads both aggregates, claims the carrier, binds it to the order, and
// persists both within a single transaction. A carrier of a different kind
// than requested is reported as not found, matching the per-kind endpoints.
func (h AssignCarrierCommandHandler) Handle(ctx context.Context, command AssignCarrierCommand) error {
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

	orderRepo := uow.OrderRepository()
	carrierRepo := uow.CarrierRepository()

	orderAggregate, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	carrierAggregate, err := carrierRepo.Get(ctx, command.CarrierID())
	if err != nil {
		return err
	}
	if carrierAggregate.Kind() != command.Kind() {
		return errs.NewObjectNotFoundError(command.Kind().String(), command.CarrierID())
	}

	if err = carrierAggregate.StartDelivery(); err != nil {
		return err
	}

	ref, err := order.NewCarrierRef(carrierAggregate.Kind(), carrierAggregate.ID())
	if err != nil {
		return err
	}

	if err = orderAggregate.AssignCarrier(ref); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, orderAggregate); err != nil {
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
