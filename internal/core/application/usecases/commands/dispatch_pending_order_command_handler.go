package commands

import (
	"context"
	"errors"

	"skybite/internal/core/domain/model/carrier"
	"skybite/internal/core/domain/services"
	"skybite/internal/pkg/errs"
)

var (
	ErrNoPendingOrders    = errors.New("no pending orders")
	ErrNoCarrierAvailable = errors.New("no carrier available")
)

// DispatchPendingOrderCommandHandler orchestrates automatic drone dispatch.
// Finds the oldest unassigned order, picks the best available drone through
// the CarrierDispatcher, and persists both sides in one transaction.
//
// Example:
//
//	handler := NewDispatchPendingOrderCommandHandler(uowFactory)
//	cmd := NewDispatchPendingOrderCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoPendingOrders):
//	    // nothing to do this tick
//	case errors.Is(err, ErrNoCarrierAvailable):
//	    // every drone is busy, charging, or grounded
//	case err != nil:
//	    // dispatch failed
//	}
type DispatchPendingOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewDispatchPendingOrderCommandHandler creates a handler for automatic dispatch.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewDispatchPendingOrderCommandHandler(uowFactory UoWFactory) DispatchPendingOrderCommandHandler {
	return DispatchPendingOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch command.
// Returns ErrNoPendingOrders when no order is waiting and
// ErrNoCarrierAvailable when no drone is eligible; both are expected
// outcomes for a scheduled run, not failures.
func (h DispatchPendingOrderCommandHandler) Handle(ctx context.Context, command DispatchPendingOrderCommand) error {
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
	orderRepo := uow.OrderRepository()

	pendingOrder, err := orderRepo.GetFirstUnassigned(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoPendingOrders
	}
	if err != nil {
		return err
	}

	drones, err := carrierRepo.GetAllAvailable(ctx, carrier.Drone)
	if err != nil {
		return err
	}
	if len(drones) == 0 {
		return ErrNoCarrierAvailable
	}

	assignedDrone, err := services.NewCarrierDispatcher().Dispatch(pendingOrder, drones)
	if errors.Is(err, services.ErrCarrierNotFound) {
		return ErrNoCarrierAvailable
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, pendingOrder); err != nil {
		return err
	}

	if err = carrierRepo.Update(ctx, assignedDrone); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
