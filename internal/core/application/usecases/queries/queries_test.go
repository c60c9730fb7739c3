package queries_test

import (
	"testing"

	"skybite/internal/core/application/usecases/queries"
	"skybite/internal/core/domain/model/carrier"
	"skybite/internal/core/domain/model/kernel"
	"skybite/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersByUserQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOrdersByUserQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetOrdersByUserQuery_EmptyUserID(t *testing.T) {
	_, err := queries.NewGetOrdersByUserQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetOrdersByUserQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrdersByUserQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersByUserQueryIsNotConstructed)
}

func TestNewGetOrdersByRestaurantQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOrdersByRestaurantQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestGetOrdersByRestaurantQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrdersByRestaurantQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersByRestaurantQueryIsNotConstructed)
}

func TestNewGetOrdersByCarrierQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOrdersByCarrierQuery(kernel.NewUUID(), carrier.Drone)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, carrier.Drone, query.Kind())
}

func TestNewGetOrdersByCarrierQuery_InvalidKind(t *testing.T) {
	_, err := queries.NewGetOrdersByCarrierQuery(kernel.NewUUID(), carrier.Kind(99))
	require.Error(t, err)
}

func TestGetOrdersByCarrierQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrdersByCarrierQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersByCarrierQueryIsNotConstructed)
}

func TestNewGetDeliveredOrdersQuery_Valid(t *testing.T) {
	query := queries.NewGetDeliveredOrdersQuery()
	require.NoError(t, query.Validate())
}

func TestGetDeliveredOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetDeliveredOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetDeliveredOrdersQueryIsNotConstructed)
}

func TestNewGetAssignedOrdersQuery_Valid(t *testing.T) {
	query := queries.NewGetAssignedOrdersQuery()
	require.NoError(t, query.Validate())
}

func TestGetAssignedOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAssignedOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAssignedOrdersQueryIsNotConstructed)
}

func TestNewGetUnassignedOrdersQuery_Valid(t *testing.T) {
	query := queries.NewGetUnassignedOrdersQuery()
	require.NoError(t, query.Validate())
}

func TestGetUnassignedOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetUnassignedOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetUnassignedOrdersQueryIsNotConstructed)
}

func TestNewGetCarriersQuery_Valid(t *testing.T) {
	query, err := queries.NewGetCarriersQuery(carrier.Drone, true)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, carrier.Drone, query.Kind())
	assert.True(t, query.OnlyAvailable())
}

func TestNewGetCarriersQuery_InvalidKind(t *testing.T) {
	_, err := queries.NewGetCarriersQuery(carrier.Kind(0), false)
	require.Error(t, err)
}

func TestGetCarriersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetCarriersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetCarriersQueryIsNotConstructed)
}
