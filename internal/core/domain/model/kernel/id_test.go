package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	t.Run("positive value is valid", func(t *testing.T) {
		id, err := kernel.NewID(42)

		require.NoError(t, err)
		assert.Equal(t, int64(42), id.Int64())
		assert.False(t, id.IsZero())
	})

	t.Run("zero value is rejected", func(t *testing.T) {
		_, err := kernel.NewID(0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative value is rejected", func(t *testing.T) {
		_, err := kernel.NewID(-7)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestID_Validate(t *testing.T) {
	require.NoError(t, kernel.ID(1).Validate())
	require.Error(t, kernel.ZeroID.Validate())
	require.Error(t, kernel.ID(-1).Validate())
}

func TestID_IsZero(t *testing.T) {
	assert.True(t, kernel.ZeroID.IsZero())
	assert.False(t, kernel.ID(5).IsZero())
}

func TestID_IsEqual(t *testing.T) {
	assert.True(t, kernel.ID(3).IsEqual(kernel.ID(3)))
	assert.False(t, kernel.ID(3).IsEqual(kernel.ID(4)))
}

func TestID_String(t *testing.T) {
	assert.Equal(t, "42", kernel.ID(42).String())
}

func TestSoftDelete(t *testing.T) {
	t.Run("zero value is active", func(t *testing.T) {
		var s kernel.SoftDelete
		assert.False(t, s.IsDeleted())
	})

	t.Run("mark deleted", func(t *testing.T) {
		var s kernel.SoftDelete
		s.MarkDeleted()
		assert.True(t, s.IsDeleted())
	})

	t.Run("restore from persistence", func(t *testing.T) {
		assert.True(t, kernel.RestoreSoftDelete(true).IsDeleted())
		assert.False(t, kernel.RestoreSoftDelete(false).IsDeleted())
	})
}
