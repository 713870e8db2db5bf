package guard_test

import (
	"errors"
	"testing"

	"fulfillment/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("invoice must be created via NewInvoice")

	t.Run("constructed_guard_passes", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_returns_given_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(errNotConstructed)

		// Then
		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero_value_falls_back_to_default", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})

	t.Run("copies_keep_state", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()
		cp := g

		// Then
		require.NoError(t, cp.Validate(errNotConstructed))
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type boxCount struct {
		n     int
		guard guard.ConstructorGuard
	}
	errBoxCountNotConstructed := errors.New("boxCount must be created via newBoxCount")

	newBoxCount := func(n int) (boxCount, error) {
		if n <= 0 {
			return boxCount{}, errors.New("box count must be positive")
		}
		return boxCount{n: n, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructor_built_value_validates", func(t *testing.T) {
		bc, err := newBoxCount(3)
		require.NoError(t, err)
		require.NoError(t, bc.guard.Validate(errBoxCountNotConstructed))
	})

	t.Run("literal_fails_validation", func(t *testing.T) {
		bc := boxCount{n: 3}
		assert.Equal(t, errBoxCountNotConstructed, bc.guard.Validate(errBoxCountNotConstructed))
	})

	t.Run("constructor_rejects_invalid_input", func(t *testing.T) {
		_, err := newBoxCount(0)
		require.Error(t, err)
	})
}

func BenchmarkConstructorGuard_Validate(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")
	b.ResetTimer()
	for range b.N {
		_ = g.Validate(err)
	}
}
