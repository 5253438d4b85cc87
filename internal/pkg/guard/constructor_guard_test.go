package guard_test

import (
	"errors"
	"testing"

	"ordering/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		assert.True(t, g.IsConstructed())
		require.NoError(t, g.Validate(errors.New("order not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("Money must be created via NewMoney")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
		assert.False(t, g.IsConstructed())
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

// TestConstructorGuardEmbedded checks the guard the way domain types use it:
// as an unexported field of a value object.
func TestConstructorGuardEmbedded(t *testing.T) {
	errProductNotConstructed := errors.New("Product must be created via NewProduct")

	type product struct {
		name  string
		guard guard.ConstructorGuard
	}

	newProduct := func(name string) (product, error) {
		if name == "" {
			return product{}, errors.New("name is required")
		}
		return product{name: name, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_product_is_valid", func(t *testing.T) {
		// When
		p, err := newProduct("Margherita")

		// Then
		require.NoError(t, err)
		require.NoError(t, p.guard.Validate(errProductNotConstructed))
	})

	t.Run("failed_construction_returns_zero_value", func(t *testing.T) {
		// When
		p, err := newProduct("")

		// Then
		require.Error(t, err)
		assert.Equal(t, errProductNotConstructed, p.guard.Validate(errProductNotConstructed))
	})

	t.Run("guard_survives_copy_by_value", func(t *testing.T) {
		// Given
		p, _ := newProduct("Calzone")

		// When
		copied := p

		// Then
		require.NoError(t, copied.guard.Validate(errProductNotConstructed))
	})
}

func BenchmarkConstructorGuard_Validate(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Validate(err)
	}
}
