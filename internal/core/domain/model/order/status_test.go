package order_test

import (
	"fmt"
	"testing"

	"skybite/internal/core/domain/model/order"
	"skybite/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.StatusUnknown))
		assert.Equal(t, 1, int(order.Placed))
		assert.Equal(t, 2, int(order.Accepted))
		assert.Equal(t, 3, int(order.Preparing))
		assert.Equal(t, 4, int(order.OutForDelivery))
		assert.Equal(t, 5, int(order.Delivered))
		assert.Equal(t, 6, int(order.Cancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Placed,
			order.Accepted,
			order.Preparing,
			order.OutForDelivery,
			order.Delivered,
			order.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		for _, status := range []order.Status{order.StatusUnknown, order.Status(-1), order.Status(7), order.Status(100)} {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("returns wire names", func(t *testing.T) {
		assert.Equal(t, "Placed", order.Placed.String())
		assert.Equal(t, "OutForDelivery", order.OutForDelivery.String())
		assert.Equal(t, "Delivered", order.Delivered.String())
		assert.Equal(t, "Unknown", order.StatusUnknown.String())
		assert.Equal(t, "Unknown", order.Status(42).String())
	})

	t.Run("round-trips through StatusFromString", func(t *testing.T) {
		for _, s := range []order.Status{order.Placed, order.Accepted, order.Preparing, order.OutForDelivery, order.Delivered, order.Cancelled} {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("StatusFromString rejects unknown names", func(t *testing.T) {
		_, err := order.StatusFromString("Shipped")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_TransitionTable(t *testing.T) {
	type transition struct {
		from, to order.Status
	}

	allowed := []transition{
		{order.Placed, order.Accepted},
		{order.Placed, order.Cancelled},
		{order.Accepted, order.Preparing},
		{order.Accepted, order.Cancelled},
		{order.Preparing, order.OutForDelivery},
		{order.Preparing, order.Cancelled},
		{order.OutForDelivery, order.Delivered},
	}

	t.Run("allows the documented transitions", func(t *testing.T) {
		for _, tr := range allowed {
			t.Run(fmt.Sprintf("%s to %s", tr.from, tr.to), func(t *testing.T) {
				next, err := tr.from.TransitionTo(tr.to)

				require.NoError(t, err)
				assert.Equal(t, tr.to, next)
			})
		}
	})

	t.Run("rejects every other pair", func(t *testing.T) {
		all := []order.Status{order.Placed, order.Accepted, order.Preparing, order.OutForDelivery, order.Delivered, order.Cancelled}

		isAllowed := func(from, to order.Status) bool {
			for _, tr := range allowed {
				if tr.from == from && tr.to == to {
					return true
				}
			}
			return false
		}

		for _, from := range all {
			for _, to := range all {
				if isAllowed(from, to) {
					continue
				}
				t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
					_, err := from.TransitionTo(to)

					require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				})
			}
		}
	})

	t.Run("terminal statuses allow nothing", func(t *testing.T) {
		assert.True(t, order.Delivered.IsTerminal())
		assert.True(t, order.Cancelled.IsTerminal())
		assert.False(t, order.OutForDelivery.IsTerminal())

		assert.False(t, order.Delivered.CanTransitionTo(order.Placed))
		assert.False(t, order.Cancelled.CanTransitionTo(order.Accepted))
	})
}
