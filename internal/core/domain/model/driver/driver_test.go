package driver_test

import (
	"strings"
	"testing"

	"ledger/internal/core/domain/model/driver"
	"ledger/internal/core/domain/model/kernel"
	"ledger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDriver(t *testing.T) {
	t.Run("should create driver with explicit limit", func(t *testing.T) {
		d, err := driver.NewDriver(kernel.MustID(2), "Driver Emma", "DL789012", "555-0202", 3)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.Equal(t, "Driver Emma", d.Name())
		assert.Equal(t, "DL789012", d.LicenseNumber())
		assert.Equal(t, "555-0202", d.Contact())
		assert.Equal(t, 3, d.CapacityLimit())
	})

	t.Run("should default zero limit to five", func(t *testing.T) {
		d, err := driver.NewDriver(kernel.MustID(1), "Driver Dave", "DL123456", "", 0)

		require.NoError(t, err)
		assert.Equal(t, driver.DefaultCapacityLimit, d.CapacityLimit())
	})

	t.Run("should reject negative limit", func(t *testing.T) {
		_, err := driver.NewDriver(kernel.MustID(1), "Driver Dave", "DL123456", "", -1)

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should require name and license", func(t *testing.T) {
		_, err := driver.NewDriver(kernel.MustID(1), " ", "", "", 5)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "licenseNumber")
	})

	t.Run("should bound contact length", func(t *testing.T) {
		_, err := driver.NewDriver(kernel.MustID(1), "Driver Dave", "DL1", strings.Repeat("5", 51), 5)

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestDriver_CheckCapacity(t *testing.T) {
	d, err := driver.NewDriver(kernel.MustID(1), "Driver Dave", "DL123456", "", 5)
	require.NoError(t, err)

	t.Run("below limit passes", func(t *testing.T) {
		assert.NoError(t, d.CheckCapacity(0))
		assert.NoError(t, d.CheckCapacity(4))
	})

	t.Run("at limit fails", func(t *testing.T) {
		err := d.CheckCapacity(5)

		require.Error(t, err)
		assert.ErrorIs(t, err, driver.ErrCapacityExceeded)
		assert.NotErrorIs(t, err, errs.ErrConstraintViolation)

		var capErr *driver.CapacityExceededError
		require.ErrorAs(t, err, &capErr)
		assert.Equal(t, int64(1), capErr.DriverID)
		assert.Equal(t, int64(5), capErr.Active)
		assert.Equal(t, 5, capErr.Limit)
		assert.Equal(t, "driver capacity exceeded: driver 1 has 5 active assignments, limit is 5", err.Error())
	})
}
