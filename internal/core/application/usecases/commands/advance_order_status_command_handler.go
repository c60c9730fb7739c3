package commands

import (
	"context"

	"skybite/internal/core/domain/model/order"
)

// AdvanceOrderStatusCommandHandler moves an order along its lifecycle.
// When the order reaches a terminal status and has a carrier bound, the
// carrier is released back to the available pool in the same transaction.
type AdvanceOrderStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewAdvanceOrderStatusCommandHandler creates a handler for status transitions.
func NewAdvanceOrderStatusCommandHandler(uowFactory UoWFactory) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status transition command.
// Rejects illegal transitions with a validation error from the aggregate.
func (h AdvanceOrderStatusCommandHandler) Handle(ctx context.Context, command AdvanceOrderStatusCommand) error {
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

	orderAggregate, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = orderAggregate.AdvanceTo(command.NewStatus()); err != nil {
		return err
	}

	if err = releaseCarrierIfDone(ctx, uow, orderAggregate); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, orderAggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// releaseCarrierIfDone frees the bound carrier when the order has reached a
// terminal status. Runs inside the caller's transaction.
func releaseCarrierIfDone(ctx context.Context, uow UoW, orderAggregate *order.Order) error {
	if !orderAggregate.Status().IsTerminal() || orderAggregate.Carrier() == nil {
		return nil
	}

	carrierRepo := uow.CarrierRepository()

	carrierAggregate, err := carrierRepo.Get(ctx, orderAggregate.Carrier().ID())
	if err != nil {
		return err
	}

	if err = carrierAggregate.Release(); err != nil {
		return err
	}

	return carrierRepo.Update(ctx, carrierAggregate)
}
