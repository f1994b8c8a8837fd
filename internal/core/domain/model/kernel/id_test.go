package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

func TestNewID(t *testing.T) {
	t.Run("accepts remote identifier", func(t *testing.T) {
		id, err := kernel.NewID("66d2a1f0c8a1b23d4e5f6789")

		require.NoError(t, err)
		require.NoError(t, id.Validate())
		assert.Equal(t, "66d2a1f0c8a1b23d4e5f6789", id.String())
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		id, err := kernel.NewID("  p1  ")

		require.NoError(t, err)
		assert.Equal(t, "p1", id.String())
	})

	t.Run("rejects empty identifier", func(t *testing.T) {
		_, err := kernel.NewID("")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects whitespace-only identifier", func(t *testing.T) {
		_, err := kernel.NewID("   ")

		require.Error(t, err)
	})
}

func TestIDValidate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var id kernel.ID

		err := id.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrIDIsNotConstructed, err)
	})
}

func TestIDIsEqual(t *testing.T) {
	t.Run("same value compares equal", func(t *testing.T) {
		a, err := kernel.NewID("a1")
		require.NoError(t, err)
		b, err := kernel.NewID("a1")
		require.NoError(t, err)
		c, err := kernel.NewID("a2")
		require.NoError(t, err)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}
