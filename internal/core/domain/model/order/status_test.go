package order_test

import (
	"testing"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	assert.Equal(t, 0, int(order.Unknown))
	assert.Equal(t, 1, int(order.Pending))
	assert.Equal(t, 2, int(order.Paid))
	assert.Equal(t, 3, int(order.Approved))
	assert.Equal(t, 4, int(order.Cancelling))
	assert.Equal(t, 5, int(order.Cancelled))
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept lifecycle statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.Pending, order.Paid, order.Approved, order.Cancelling, order.Cancelled} {
			require.NoError(t, status.Validate(), status.String())
		}
	})

	t.Run("should reject unknown and out of range values", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(99)} {
			assert.ErrorIs(t, status.Validate(), errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", order.Pending.String())
	assert.Equal(t, "Cancelling", order.Cancelling.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestParseStatus(t *testing.T) {
	t.Run("should round trip every lifecycle status", func(t *testing.T) {
		for _, status := range []order.Status{order.Pending, order.Paid, order.Approved, order.Cancelling, order.Cancelled} {
			parsed, err := order.ParseStatus(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, name := range []string{"", "Unknown", "pending", "Shipped"} {
			_, err := order.ParseStatus(name)

			assert.ErrorIs(t, err, errs.ErrValueIsInvalid, name)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Approved.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Paid.IsTerminal())
	assert.False(t, order.Cancelling.IsTerminal())
}

func TestStatus_Transitions(t *testing.T) {
	type transition func(order.Status) (order.Status, error)

	transitions := map[string]transition{
		"pay":        order.Status.Pay,
		"approve":    order.Status.Approve,
		"initCancel": order.Status.InitCancel,
		"cancel":     order.Status.Cancel,
	}

	// Every (from, operation) pair not listed here must fail.
	allowed := map[order.Status]map[string]order.Status{
		order.Pending:    {"pay": order.Paid, "cancel": order.Cancelled},
		order.Paid:       {"approve": order.Approved, "initCancel": order.Cancelling},
		order.Cancelling: {"cancel": order.Cancelled},
	}

	all := []order.Status{order.Unknown, order.Pending, order.Paid, order.Approved, order.Cancelling, order.Cancelled}

	for _, from := range all {
		for name, apply := range transitions {
			t.Run(from.String()+"_"+name, func(t *testing.T) {
				to, err := apply(from)

				expected, ok := allowed[from][name]
				if ok {
					require.NoError(t, err)
					assert.Equal(t, expected, to)
					return
				}

				require.ErrorIs(t, err, order.ErrInvalidState)
				assert.Equal(t, order.Unknown, to)
				assert.Contains(t, err.Error(), name)
				assert.Contains(t, err.Error(), from.String())
			})
		}
	}
}
