package kernel_test

import (
	"testing"

	"ledger/internal/core/domain/model/kernel"
	"ledger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	t.Run("should accept positive values", func(t *testing.T) {
		id, err := kernel.NewID("shipmentID", 1001)

		require.NoError(t, err)
		assert.Equal(t, int64(1001), id.Int64())
		assert.Equal(t, "1001", id.String())
		assert.NoError(t, id.Validate())
	})

	t.Run("should reject zero and negative values", func(t *testing.T) {
		for _, v := range []int64{0, -1, -1001} {
			_, err := kernel.NewID("packageID", v)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			assert.Contains(t, err.Error(), "packageID")
		}
	})
}

func TestID_ZeroValue(t *testing.T) {
	var id kernel.ID

	assert.True(t, id.IsZero())
	assert.ErrorIs(t, id.Validate(), errs.ErrValueIsRequired)
}

func TestID_IsEqual(t *testing.T) {
	a := kernel.MustID(7)
	b := kernel.MustID(7)
	c := kernel.MustID(8)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestMustID_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { kernel.MustID(0) })
}

func TestNewOptionalID(t *testing.T) {
	t.Run("nil and zero map to nil", func(t *testing.T) {
		zero := int64(0)

		id, err := kernel.NewOptionalID("agentID", nil)
		require.NoError(t, err)
		assert.Nil(t, id)

		id, err = kernel.NewOptionalID("agentID", &zero)
		require.NoError(t, err)
		assert.Nil(t, id)
	})

	t.Run("negative is rejected", func(t *testing.T) {
		v := int64(-3)

		_, err := kernel.NewOptionalID("agentID", &v)

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("positive round trips through storage form", func(t *testing.T) {
		v := int64(2)

		id, err := kernel.NewOptionalID("agentID", &v)
		require.NoError(t, err)

		stored := kernel.Int64Ptr(id)
		require.NotNil(t, stored)
		assert.Equal(t, int64(2), *stored)
		assert.True(t, kernel.IDFromPtr(stored).IsEqual(*id))
	})

	t.Run("absent storage value maps to nil", func(t *testing.T) {
		assert.Nil(t, kernel.Int64Ptr(nil))
		assert.Nil(t, kernel.IDFromPtr(nil))
	})
}
