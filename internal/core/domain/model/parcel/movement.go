package parcel

import (
	"errors"
	"fmt"
	"time"

	"ledger/internal/core/domain/model/kernel"
	"ledger/internal/pkg/errs"
)

// Movement is the append-only record of a package changing shipment.
type Movement struct {
	id             kernel.UUID
	packageID      kernel.ID
	fromShipmentID *kernel.ID
	toShipmentID   *kernel.ID
	movedAt        time.Time
	agentID        *kernel.ID
	reason         MovementReason
	notes          string
}

// RestoreMovement rebuilds a movement read from storage.
func RestoreMovement(
	id kernel.UUID,
	packageID kernel.ID,
	fromShipmentID, toShipmentID *kernel.ID,
	movedAt time.Time,
	agentID *kernel.ID,
	reason MovementReason,
	notes string,
) (*Movement, error) {
	if err := errors.Join(id.Validate(), packageID.Validate(), reason.Validate()); err != nil {
		return nil, err
	}
	return &Movement{
		id:             id,
		packageID:      packageID,
		fromShipmentID: fromShipmentID,
		toShipmentID:   toShipmentID,
		movedAt:        movedAt,
		agentID:        agentID,
		reason:         reason,
		notes:          notes,
	}, nil
}

func (m *Movement) ID() kernel.UUID            { return m.id }
func (m *Movement) PackageID() kernel.ID       { return m.packageID }
func (m *Movement) FromShipmentID() *kernel.ID { return m.fromShipmentID }
func (m *Movement) ToShipmentID() *kernel.ID   { return m.toShipmentID }
func (m *Movement) MovedAt() time.Time         { return m.movedAt }
func (m *Movement) AgentID() *kernel.ID        { return m.agentID }
func (m *Movement) Reason() MovementReason     { return m.reason }
func (m *Movement) Notes() string              { return m.notes }

// Transfer moves a package from one shipment to another.
//
// open must be the package's currently open assignment, locked by the caller.
// Transfer closes it with the removal reason derived from reason and returns the
// new open assignment for to together with the movement record. Nothing is
// modified when an error is returned.
func Transfer(
	open *Assignment,
	from, to kernel.ID,
	agentID *kernel.ID,
	reason MovementReason,
	notes string,
	at time.Time,
) (*Assignment, *Movement, error) {
	if err := open.Validate(); err != nil {
		return nil, nil, err
	}
	if err := errors.Join(from.Validate(), to.Validate(), reason.Validate()); err != nil {
		return nil, nil, err
	}
	if from.IsEqual(to) {
		return nil, nil, errs.NewValueIsInvalidErrorWithCause("toShipmentID",
			fmt.Errorf("source and destination are both shipment %s", from))
	}
	if !open.IsOpen() || !open.ShipmentID().IsEqual(from) {
		return nil, nil, errs.NewPreconditionFailedError(
			fmt.Sprintf("package %s is not assigned to shipment %s", open.PackageID(), from))
	}

	next, err := NewAssignment(open.PackageID(), to, agentID, notes, at)
	if err != nil {
		return nil, nil, err
	}
	if err = open.Close(reason.RemovalReason(), at); err != nil {
		return nil, nil, err
	}

	fromID, toID := from, to
	movement := &Movement{
		id:             kernel.NewUUID(),
		packageID:      open.PackageID(),
		fromShipmentID: &fromID,
		toShipmentID:   &toID,
		movedAt:        at,
		agentID:        agentID,
		reason:         reason,
		notes:          next.Notes(),
	}

	return next, movement, nil
}
