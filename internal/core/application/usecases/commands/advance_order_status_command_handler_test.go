package commands_test

import (
	"testing"

	"skybite/internal/core/application/usecases/commands"
	"skybite/internal/core/domain/model/carrier"
	"skybite/internal/core/domain/model/order"
	"skybite/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mustOrderOutForDelivery builds an order that is out for delivery with the
// given drone bound to it.
func mustOrderOutForDelivery(t *testing.T, drone *carrier.Carrier) *order.Order {
	t.Helper()

	o := mustOrder(t)
	require.NoError(t, o.AdvanceTo(order.Accepted))
	require.NoError(t, o.AdvanceTo(order.Preparing))
	require.NoError(t, drone.StartDelivery())
	ref, err := order.NewCarrierRef(drone.Kind(), drone.ID())
	require.NoError(t, err)
	require.NoError(t, o.AssignCarrier(ref))
	require.NoError(t, o.AdvanceTo(order.OutForDelivery))

	return o
}

func TestAdvanceOrderStatusCommandHandler_Handle_SimpleTransition(t *testing.T) {
	ctx := t.Context()
	testOrder := mustOrder(t)
	cmd, err := commands.NewAdvanceOrderStatusCommand(testOrder.ID(), order.Accepted)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceOrderStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Accepted, testOrder.Status())
	uow.AssertNotCalled(t, "CarrierRepository")
}

func TestAdvanceOrderStatusCommandHandler_Handle_DeliveredReleasesCarrier(t *testing.T) {
	ctx := t.Context()
	testDrone := mustDrone(t, 60)
	testOrder := mustOrderOutForDelivery(t, testDrone)

	cmd, err := commands.NewAdvanceOrderStatusCommand(testOrder.ID(), order.Delivered)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	carrierRepo := new(MockCarrierRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("CarrierRepository").Return(carrierRepo).Once(),
		carrierRepo.On("Get", ctx, testDrone.ID()).Return(testDrone, nil).Once(),
		carrierRepo.On("Update", ctx, mock.AnythingOfType("*carrier.Carrier")).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceOrderStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, testOrder.IsDelivered())
	assert.Equal(t, carrier.Available, testDrone.Status())

	orderRepo.AssertExpectations(t)
	carrierRepo.AssertExpectations(t)
}

func TestAdvanceOrderStatusCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	testOrder := mustOrder(t)
	cmd, err := commands.NewAdvanceOrderStatusCommand(testOrder.ID(), order.Delivered)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceOrderStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, order.Placed, testOrder.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestNewAdvanceOrderStatusCommand_InvalidStatus(t *testing.T) {
	_, err := commands.NewAdvanceOrderStatusCommand(mustOrder(t).ID(), order.StatusUnknown)

	require.Error(t, err)
}
