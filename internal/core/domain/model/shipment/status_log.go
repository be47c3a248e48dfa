package shipment

import (
	"errors"
	"time"

	"ledger/internal/core/domain/model/kernel"
)

var ErrStatusLogEntryIsNotConstructed = errors.New("StatusLogEntry must be created via Shipment.ChangeStatus or RestoreStatusLogEntry")

// StatusLogEntry is an immutable audit record of one status change.
type StatusLogEntry struct {
	id         kernel.UUID
	shipmentID kernel.ID
	locationID *kernel.ID
	agentID    *kernel.ID
	at         time.Time
	status     Status
	notes      string

	isConstructed bool
}

// RestoreStatusLogEntry rebuilds an entry read from storage.
func RestoreStatusLogEntry(
	id kernel.UUID,
	shipmentID kernel.ID,
	locationID, agentID *kernel.ID,
	at time.Time,
	status Status,
	notes string,
) (*StatusLogEntry, error) {
	if err := errors.Join(id.Validate(), shipmentID.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if err := requireTime("timestamp", at); err != nil {
		return nil, err
	}
	return &StatusLogEntry{
		id:            id,
		shipmentID:    shipmentID,
		locationID:    locationID,
		agentID:       agentID,
		at:            at,
		status:        status,
		notes:         notes,
		isConstructed: true,
	}, nil
}

func (e *StatusLogEntry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrStatusLogEntryIsNotConstructed
	}
	return nil
}

func (e *StatusLogEntry) ID() kernel.UUID        { return e.id }
func (e *StatusLogEntry) ShipmentID() kernel.ID  { return e.shipmentID }
func (e *StatusLogEntry) LocationID() *kernel.ID { return e.locationID }
func (e *StatusLogEntry) AgentID() *kernel.ID    { return e.agentID }
func (e *StatusLogEntry) Timestamp() time.Time   { return e.at }
func (e *StatusLogEntry) Status() Status         { return e.status }
func (e *StatusLogEntry) Notes() string          { return e.notes }
