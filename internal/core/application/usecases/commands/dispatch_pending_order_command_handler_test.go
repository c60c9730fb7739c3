package commands_test

import (
	"errors"
	"testing"

	"skybite/internal/core/application/usecases/commands"
	"skybite/internal/core/domain/model/carrier"
	"skybite/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDispatchPendingOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewDispatchPendingOrderCommand()

	testOrder := mustOrder(t)
	lowDrone := mustDrone(t, 45)
	fullDrone := mustDrone(t, 98)
	drones := []*carrier.Carrier{lowDrone, fullDrone}

	orderRepo := new(MockOrderRepository)
	carrierRepo := new(MockCarrierRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CarrierRepository").Return(carrierRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetFirstUnassigned", ctx).Return(testOrder, nil).Once(),
		carrierRepo.On("GetAllAvailable", ctx, carrier.Drone).Return(drones, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		carrierRepo.On("Update", ctx, mock.AnythingOfType("*carrier.Carrier")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDispatchPendingOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)

	// the fullest battery wins
	require.NotNil(t, testOrder.Carrier())
	assert.True(t, testOrder.Carrier().ID().IsEqual(fullDrone.ID()))
	assert.Equal(t, carrier.InDelivery, fullDrone.Status())
	assert.Equal(t, carrier.Available, lowDrone.Status())

	updatedCarrier := carrierRepo.Calls[1].Arguments[1].(*carrier.Carrier)
	assert.True(t, updatedCarrier.IsEqual(fullDrone))

	orderRepo.AssertExpectations(t)
	carrierRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestDispatchPendingOrderCommandHandler_Handle_NoPendingOrders(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewDispatchPendingOrderCommand()

	orderRepo := new(MockOrderRepository)
	carrierRepo := new(MockCarrierRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CarrierRepository").Return(carrierRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetFirstUnassigned", ctx).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDispatchPendingOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrNoPendingOrders)
}

func TestDispatchPendingOrderCommandHandler_Handle_NoDronesAvailable(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewDispatchPendingOrderCommand()
	testOrder := mustOrder(t)

	orderRepo := new(MockOrderRepository)
	carrierRepo := new(MockCarrierRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CarrierRepository").Return(carrierRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetFirstUnassigned", ctx).Return(testOrder, nil).Once(),
		carrierRepo.On("GetAllAvailable", ctx, carrier.Drone).
			Return([]*carrier.Carrier{}, nil).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDispatchPendingOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrNoCarrierAvailable)
	assert.Nil(t, testOrder.Carrier())
}

func TestDispatchPendingOrderCommandHandler_Handle_AllDronesDrained(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewDispatchPendingOrderCommand()
	testOrder := mustOrder(t)
	drained := mustDrone(t, 5)

	orderRepo := new(MockOrderRepository)
	carrierRepo := new(MockCarrierRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CarrierRepository").Return(carrierRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetFirstUnassigned", ctx).Return(testOrder, nil).Once(),
		carrierRepo.On("GetAllAvailable", ctx, carrier.Drone).
			Return([]*carrier.Carrier{drained}, nil).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDispatchPendingOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrNoCarrierAvailable)
	assert.Equal(t, carrier.Available, drained.Status())
}

func TestDispatchPendingOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewDispatchPendingOrderCommand()

	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := commands.NewDispatchPendingOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
}
