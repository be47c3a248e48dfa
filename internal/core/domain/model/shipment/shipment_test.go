package shipment_test

import (
	"strings"
	"testing"
	"time"

	"ledger/internal/core/domain/model/kernel"
	"ledger/internal/core/domain/model/shipment"
	"ledger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func createShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(
		kernel.MustID(1001),
		kernel.MustID(1), kernel.MustID(2),
		kernel.MustID(1), kernel.MustID(2),
		baseTime.Add(48*time.Hour),
		baseTime,
	)
	require.NoError(t, err)
	return s
}

func ptr(id kernel.ID) *kernel.ID { return &id }

func TestNewShipment(t *testing.T) {
	t.Run("should create pending shipment", func(t *testing.T) {
		s := createShipment(t)

		require.NoError(t, s.Validate())
		assert.Equal(t, shipment.Pending, s.Status())
		assert.Equal(t, int64(1001), s.ID().Int64())
		assert.Equal(t, int64(1), s.SenderID().Int64())
		assert.Equal(t, int64(2), s.RecipientID().Int64())
		assert.Equal(t, int64(1), s.OriginID().Int64())
		assert.Equal(t, int64(2), s.DestinationID().Int64())
		assert.Equal(t, baseTime, s.CreatedAt())
		assert.Equal(t, baseTime.Add(48*time.Hour), s.EstimatedDelivery())
		assert.Nil(t, s.ActualDelivery())
	})

	t.Run("should reject missing ids and times", func(t *testing.T) {
		_, err := shipment.NewShipment(
			kernel.ID{}, kernel.MustID(1), kernel.MustID(2), kernel.MustID(1), kernel.MustID(2),
			time.Time{}, baseTime,
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, shipment.ErrEstimatedDeliveryIsRequired)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var s shipment.Shipment

		assert.ErrorIs(t, s.Validate(), shipment.ErrShipmentIsNotConstructed)
	})
}

func TestShipment_ChangeStatus(t *testing.T) {
	t.Run("should set status and return matching log entry", func(t *testing.T) {
		s := createShipment(t)
		at := baseTime.Add(time.Hour)

		entry, err := s.ChangeStatus(shipment.InTransit, ptr(kernel.MustID(1)), ptr(kernel.MustID(2)), "Package picked up", at)

		require.NoError(t, err)
		require.NoError(t, entry.Validate())
		assert.Equal(t, shipment.InTransit, s.Status())
		assert.NoError(t, entry.ID().Validate())
		assert.True(t, entry.ShipmentID().IsEqual(s.ID()))
		assert.Equal(t, shipment.InTransit, entry.Status())
		assert.Equal(t, int64(1), entry.AgentID().Int64())
		assert.Equal(t, int64(2), entry.LocationID().Int64())
		assert.Equal(t, "Package picked up", entry.Notes())
		assert.Equal(t, at, entry.Timestamp())
		assert.Nil(t, s.ActualDelivery())
	})

	t.Run("should allow any transition", func(t *testing.T) {
		s := createShipment(t)

		_, err := s.ChangeStatus(shipment.Returned, nil, nil, "", baseTime)
		require.NoError(t, err)
		_, err = s.ChangeStatus(shipment.Pending, nil, nil, "", baseTime)
		require.NoError(t, err)

		assert.Equal(t, shipment.Pending, s.Status())
	})

	t.Run("should stamp actual delivery once", func(t *testing.T) {
		s := createShipment(t)
		first := baseTime.Add(2 * time.Hour)

		_, err := s.ChangeStatus(shipment.Delivered, nil, nil, "", first)
		require.NoError(t, err)
		_, err = s.ChangeStatus(shipment.Delivered, nil, nil, "again", first.Add(time.Hour))
		require.NoError(t, err)

		require.NotNil(t, s.ActualDelivery())
		assert.Equal(t, first, *s.ActualDelivery())
	})

	t.Run("should reject invalid status without side effects", func(t *testing.T) {
		s := createShipment(t)

		entry, err := s.ChangeStatus(shipment.Status("lost"), nil, nil, "", baseTime)

		require.Error(t, err)
		assert.Nil(t, entry)
		assert.Equal(t, shipment.Pending, s.Status())
	})

	t.Run("should reject oversized notes", func(t *testing.T) {
		s := createShipment(t)

		_, err := s.ChangeStatus(shipment.InTransit, nil, nil, strings.Repeat("n", shipment.MaxNotesLength+1), baseTime)

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, shipment.Pending, s.Status())
	})
}

func TestShipment_IsDelayed(t *testing.T) {
	estimate := baseTime.Add(48 * time.Hour)

	t.Run("open shipment past estimate is delayed", func(t *testing.T) {
		s := createShipment(t)

		assert.True(t, s.IsDelayed(estimate.Add(time.Minute)))
		assert.False(t, s.IsDelayed(estimate))
	})

	t.Run("closed shipment is never delayed", func(t *testing.T) {
		s := createShipment(t)
		_, err := s.ChangeStatus(shipment.Delivered, nil, nil, "", estimate.Add(time.Hour))
		require.NoError(t, err)

		assert.False(t, s.IsDelayed(estimate.Add(3*time.Hour)))
	})

	t.Run("restored open shipment delivered late stays delayed", func(t *testing.T) {
		late := estimate.Add(time.Hour)
		s, err := shipment.RestoreShipment(
			kernel.MustID(1001), kernel.MustID(1), kernel.MustID(2), kernel.MustID(1), kernel.MustID(2),
			shipment.InTransit, baseTime, estimate, &late,
		)
		require.NoError(t, err)

		assert.True(t, s.IsDelayed(estimate.Add(2*time.Hour)))
	})
}

func TestRestoreShipment_RejectsUnknownStatus(t *testing.T) {
	_, err := shipment.RestoreShipment(
		kernel.MustID(1001), kernel.MustID(1), kernel.MustID(2), kernel.MustID(1), kernel.MustID(2),
		shipment.Status("archived"), baseTime, baseTime, nil,
	)

	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRestoreStatusLogEntry(t *testing.T) {
	id := kernel.NewUUID()

	entry, err := shipment.RestoreStatusLogEntry(id, kernel.MustID(1001), nil, ptr(kernel.MustID(1)), baseTime, shipment.InTransit, "ok")

	require.NoError(t, err)
	assert.True(t, entry.ID().IsEqual(id))
	assert.Nil(t, entry.LocationID())

	_, err = shipment.RestoreStatusLogEntry(kernel.UUID{}, kernel.MustID(1001), nil, nil, baseTime, shipment.InTransit, "")
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
