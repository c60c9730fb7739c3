package carrier_test

import (
	"testing"

	"skybite/internal/core/domain/model/carrier"
	"skybite/internal/core/domain/model/kernel"
	"skybite/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCarrier(t *testing.T) {
	t.Run("creates available drone with capabilities", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := carrier.NewCarrier(id, carrier.Drone, "SB-DR-017", 85, 2500)

		require.NoError(t, err)
		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, carrier.Drone, c.Kind())
		assert.Equal(t, carrier.Available, c.Status())
		assert.Equal(t, 85, c.BatteryLevel())
		assert.Equal(t, 2500, c.MaxPayloadGrams())
		assert.Equal(t, 1, c.Version())
	})

	t.Run("creates delivery partner without capabilities", func(t *testing.T) {
		c, err := carrier.NewCarrier(kernel.NewUUID(), carrier.Deliveryman, "Ravi", 0, 0)

		require.NoError(t, err)
		assert.Equal(t, carrier.Deliveryman, c.Kind())
		assert.True(t, c.IsAvailable())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := carrier.NewCarrier(kernel.NewUUID(), carrier.Drone, "", 85, 2500)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects invalid kind", func(t *testing.T) {
		_, err := carrier.NewCarrier(kernel.NewUUID(), carrier.KindUnknown, "X", 0, 0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects zero-value id", func(t *testing.T) {
		var id kernel.UUID
		_, err := carrier.NewCarrier(id, carrier.Drone, "SB-DR-017", 85, 2500)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects drone battery out of range", func(t *testing.T) {
		_, err := carrier.NewCarrier(kernel.NewUUID(), carrier.Drone, "SB-DR-017", 120, 2500)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects drone without payload limit", func(t *testing.T) {
		_, err := carrier.NewCarrier(kernel.NewUUID(), carrier.Drone, "SB-DR-017", 85, 0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects capabilities on delivery partner", func(t *testing.T) {
		_, err := carrier.NewCarrier(kernel.NewUUID(), carrier.Deliveryman, "Ravi", 50, 0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreCarrier(t *testing.T) {
	t.Run("restores persisted state", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := carrier.RestoreCarrier(id, carrier.Drone, "SB-DR-017", carrier.InDelivery, 40, 2500, 7)

		require.NoError(t, err)
		assert.Equal(t, carrier.InDelivery, c.Status())
		assert.Equal(t, 7, c.Version())
	})

	t.Run("rejects invalid version", func(t *testing.T) {
		_, err := carrier.RestoreCarrier(kernel.NewUUID(), carrier.Drone, "SB-DR-017", carrier.Available, 40, 2500, 0)

		require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	})
}

func TestCarrier_StartDelivery(t *testing.T) {
	t.Run("claims an available carrier", func(t *testing.T) {
		c, _ := carrier.NewCarrier(kernel.NewUUID(), carrier.Drone, "SB-DR-017", 85, 2500)

		err := c.StartDelivery()

		require.NoError(t, err)
		assert.Equal(t, carrier.InDelivery, c.Status())
	})

	t.Run("rejects a second claim with a conflict", func(t *testing.T) {
		c, _ := carrier.NewCarrier(kernel.NewUUID(), carrier.Drone, "SB-DR-017", 85, 2500)
		require.NoError(t, c.StartDelivery())

		err := c.StartDelivery()

		require.ErrorIs(t, err, errs.ErrResourceConflict)
		assert.Equal(t, carrier.InDelivery, c.Status())
	})

	t.Run("rejects claiming a drone in maintenance", func(t *testing.T) {
		c, _ := carrier.NewCarrier(kernel.NewUUID(), carrier.Drone, "SB-DR-017", 85, 2500)
		require.NoError(t, c.ChangeStatus(carrier.Maintenance))

		err := c.StartDelivery()

		require.ErrorIs(t, err, errs.ErrResourceConflict)
	})
}

func TestCarrier_Release(t *testing.T) {
	t.Run("returns an in-delivery carrier to the pool", func(t *testing.T) {
		c, _ := carrier.NewCarrier(kernel.NewUUID(), carrier.Drone, "SB-DR-017", 85, 2500)
		require.NoError(t, c.StartDelivery())

		err := c.Release()

		require.NoError(t, err)
		assert.Equal(t, carrier.Available, c.Status())
	})

	t.Run("rejects releasing an idle carrier", func(t *testing.T) {
		c, _ := carrier.NewCarrier(kernel.NewUUID(), carrier.Drone, "SB-DR-017", 85, 2500)

		err := c.Release()

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestCarrier_ChangeStatus(t *testing.T) {
	t.Run("allows maintenance for drones", func(t *testing.T) {
		c, _ := carrier.NewCarrier(kernel.NewUUID(), carrier.Drone, "SB-DR-017", 85, 2500)

		require.NoError(t, c.ChangeStatus(carrier.Maintenance))
		assert.Equal(t, carrier.Maintenance, c.Status())

		require.NoError(t, c.ChangeStatus(carrier.Available))
		assert.True(t, c.IsAvailable())
	})

	t.Run("rejects maintenance for delivery partners", func(t *testing.T) {
		c, _ := carrier.NewCarrier(kernel.NewUUID(), carrier.Deliveryman, "Ravi", 0, 0)

		err := c.ChangeStatus(carrier.Maintenance)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("cannot enter in-delivery via a status patch", func(t *testing.T) {
		c, _ := carrier.NewCarrier(kernel.NewUUID(), carrier.Drone, "SB-DR-017", 85, 2500)

		err := c.ChangeStatus(carrier.InDelivery)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, carrier.Available, c.Status())
	})

	t.Run("cannot leave in-delivery via a status patch", func(t *testing.T) {
		c, _ := carrier.NewCarrier(kernel.NewUUID(), carrier.Drone, "SB-DR-017", 85, 2500)
		require.NoError(t, c.StartDelivery())

		err := c.ChangeStatus(carrier.Offline)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, carrier.InDelivery, c.Status())
	})
}

func TestCarrier_SetBatteryLevel(t *testing.T) {
	t.Run("records valid readings", func(t *testing.T) {
		c, _ := carrier.NewCarrier(kernel.NewUUID(), carrier.Drone, "SB-DR-017", 85, 2500)

		require.NoError(t, c.SetBatteryLevel(12))
		assert.Equal(t, 12, c.BatteryLevel())
	})

	t.Run("rejects readings out of range", func(t *testing.T) {
		c, _ := carrier.NewCarrier(kernel.NewUUID(), carrier.Drone, "SB-DR-017", 85, 2500)

		require.ErrorIs(t, c.SetBatteryLevel(101), errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects readings for delivery partners", func(t *testing.T) {
		c, _ := carrier.NewCarrier(kernel.NewUUID(), carrier.Deliveryman, "Ravi", 0, 0)

		require.ErrorIs(t, c.SetBatteryLevel(50), errs.ErrValueIsInvalid)
	})
}

func TestCarrier_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var c carrier.Carrier

		require.ErrorIs(t, c.Validate(), carrier.ErrCarrierIsNotConstructed)
	})

	t.Run("nil is invalid", func(t *testing.T) {
		var c *carrier.Carrier

		require.ErrorIs(t, c.Validate(), carrier.ErrCarrierIsNotConstructed)
	})
}

func TestStatusAndKindStrings(t *testing.T) {
	t.Run("status round-trips through strings", func(t *testing.T) {
		for _, s := range []carrier.Status{carrier.Available, carrier.InDelivery, carrier.Maintenance, carrier.Offline} {
			parsed, err := carrier.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("kind round-trips through strings", func(t *testing.T) {
		for _, k := range []carrier.Kind{carrier.Deliveryman, carrier.Drone} {
			parsed, err := carrier.KindFromString(k.String())
			require.NoError(t, err)
			assert.Equal(t, k, parsed)
		}
	})

	t.Run("rejects unknown strings", func(t *testing.T) {
		_, err := carrier.StatusFromString("FLYING")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = carrier.KindFromString("ROBOT")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
