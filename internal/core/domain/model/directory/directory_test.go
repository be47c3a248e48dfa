package directory_test

import (
	"strings"
	"testing"

	"ledger/internal/core/domain/model/directory"
	"ledger/internal/core/domain/model/kernel"
	"ledger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	c, err := directory.NewCustomer(kernel.MustID(1), "John Doe", "john@example.com")

	require.NoError(t, err)
	assert.Equal(t, int64(1), c.ID().Int64())
	assert.Equal(t, "John Doe", c.Name())
	assert.Equal(t, "john@example.com", c.Contact())

	_, err = directory.NewCustomer(kernel.MustID(1), "", "")
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = directory.NewCustomer(kernel.MustID(1), "John", strings.Repeat("c", 51))
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewAgent(t *testing.T) {
	a, err := directory.NewAgent(kernel.MustID(1), "Agent Alice", "alice@courier.com")

	require.NoError(t, err)
	assert.Equal(t, "Agent Alice", a.Name())
	assert.Equal(t, "alice@courier.com", a.Contacts())

	_, err = directory.NewAgent(kernel.ID{}, "Agent Alice", "")
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewLocation(t *testing.T) {
	t.Run("root location", func(t *testing.T) {
		l, err := directory.NewLocation(kernel.MustID(1), "Main Hub", nil, "10001")

		require.NoError(t, err)
		assert.Nil(t, l.ParentID())
		assert.Equal(t, "10001", l.PostalCode())
	})

	t.Run("child location", func(t *testing.T) {
		parent := kernel.MustID(1)

		l, err := directory.NewLocation(kernel.MustID(2), "Sub Hub A", &parent, "10002")

		require.NoError(t, err)
		assert.Equal(t, int64(1), l.ParentID().Int64())
	})

	t.Run("self parent is rejected", func(t *testing.T) {
		self := kernel.MustID(3)

		_, err := directory.NewLocation(kernel.MustID(3), "Loop", &self, "")

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("postal code is bounded", func(t *testing.T) {
		_, err := directory.NewLocation(kernel.MustID(4), "Far Hub", nil, strings.Repeat("9", 21))

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
