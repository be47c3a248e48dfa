package parcel

import (
	"errors"
	"fmt"
	"time"

	"ledger/internal/core/domain/model/kernel"
	"ledger/internal/pkg/errs"
)

const MaxNotesLength = 1000

var ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment constructor")

// Assignment links a package to a shipment for a period of time. It is open
// while RemovedAt is nil.
type Assignment struct {
	id            kernel.UUID
	packageID     kernel.ID
	shipmentID    kernel.ID
	assignedAt    time.Time
	removedAt     *time.Time
	agentID       *kernel.ID
	removalReason *RemovalReason
	notes         string

	isConstructed bool
}

// NewAssignment opens a new assignment of packageID to shipmentID.
func NewAssignment(packageID, shipmentID kernel.ID, agentID *kernel.ID, notes string, at time.Time) (*Assignment, error) {
	if err := errors.Join(packageID.Validate(), shipmentID.Validate()); err != nil {
		return nil, err
	}
	if at.IsZero() {
		return nil, errs.NewValueIsRequiredError("assignedAt")
	}
	notes, err := kernel.OptionalText("notes", notes, MaxNotesLength)
	if err != nil {
		return nil, err
	}

	return &Assignment{
		id:            kernel.NewUUID(),
		packageID:     packageID,
		shipmentID:    shipmentID,
		assignedAt:    at,
		agentID:       agentID,
		notes:         notes,
		isConstructed: true,
	}, nil
}

// RestoreAssignment rebuilds an assignment read from storage.
func RestoreAssignment(
	id kernel.UUID,
	packageID, shipmentID kernel.ID,
	assignedAt time.Time,
	removedAt *time.Time,
	agentID *kernel.ID,
	removalReason *RemovalReason,
	notes string,
) (*Assignment, error) {
	if err := errors.Join(id.Validate(), packageID.Validate(), shipmentID.Validate()); err != nil {
		return nil, err
	}
	if removalReason != nil {
		if err := removalReason.Validate(); err != nil {
			return nil, err
		}
	}
	return &Assignment{
		id:            id,
		packageID:     packageID,
		shipmentID:    shipmentID,
		assignedAt:    assignedAt,
		removedAt:     removedAt,
		agentID:       agentID,
		removalReason: removalReason,
		notes:         notes,
		isConstructed: true,
	}, nil
}

func (a *Assignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

func (a *Assignment) ID() kernel.UUID               { return a.id }
func (a *Assignment) PackageID() kernel.ID          { return a.packageID }
func (a *Assignment) ShipmentID() kernel.ID         { return a.shipmentID }
func (a *Assignment) AssignedAt() time.Time         { return a.assignedAt }
func (a *Assignment) RemovedAt() *time.Time         { return a.removedAt }
func (a *Assignment) AgentID() *kernel.ID           { return a.agentID }
func (a *Assignment) RemovalReason() *RemovalReason { return a.removalReason }
func (a *Assignment) Notes() string                 { return a.notes }

func (a *Assignment) IsOpen() bool {
	return a.removedAt == nil
}

// Close ends the assignment. Closing an already closed assignment fails with
// ErrPreconditionFailed.
func (a *Assignment) Close(reason RemovalReason, at time.Time) error {
	if err := reason.Validate(); err != nil {
		return err
	}
	if !a.IsOpen() {
		return errs.NewPreconditionFailedError(fmt.Sprintf("assignment %s of package %s is already closed", a.id, a.packageID))
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("removedAt")
	}
	removed := at
	a.removedAt = &removed
	a.removalReason = &reason
	return nil
}
