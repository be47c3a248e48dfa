package commands

import (
	"errors"
	"fmt"

	"ledger/internal/core/domain/model/kernel"
	"ledger/internal/core/domain/model/parcel"
	"ledger/internal/pkg/errs"
	"ledger/internal/pkg/guard"
)

var ErrMovePackageBetweenShipmentsCommandIsNotConstructed = errors.New(
	"MovePackageBetweenShipmentsCommand must be created via NewMovePackageBetweenShipmentsCommand constructor",
)

// MovePackageBetweenShipmentsCommand moves a package from the shipment it is
// currently assigned to into another one.
type MovePackageBetweenShipmentsCommand struct { //nolint:recvcheck //using for validation
	packageID      kernel.ID
	fromShipmentID kernel.ID
	toShipmentID   kernel.ID
	agentID        kernel.ID
	reason         parcel.MovementReason
	notes          string

	guard guard.ConstructorGuard
}

func NewMovePackageBetweenShipmentsCommand(
	packageID, fromShipmentID, toShipmentID, agentID int64,
	reason, notes string,
) (MovePackageBetweenShipmentsCommand, error) {
	cmd := MovePackageBetweenShipmentsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setID(&cmd.packageID, "packageID", packageID),
		setID(&cmd.fromShipmentID, "fromShipmentID", fromShipmentID),
		setID(&cmd.toShipmentID, "toShipmentID", toShipmentID),
		setID(&cmd.agentID, "agentID", agentID),
		cmd.setReason(reason),
		cmd.setNotes(notes),
	); err != nil {
		return MovePackageBetweenShipmentsCommand{}, err
	}

	if cmd.fromShipmentID.IsEqual(cmd.toShipmentID) {
		return MovePackageBetweenShipmentsCommand{}, errs.NewValueIsInvalidErrorWithCause("toShipmentID",
			fmt.Errorf("source and destination are both shipment %s", cmd.fromShipmentID))
	}

	return cmd, nil
}

func (c MovePackageBetweenShipmentsCommand) Validate() error {
	return c.guard.Validate(ErrMovePackageBetweenShipmentsCommandIsNotConstructed)
}

func (c MovePackageBetweenShipmentsCommand) PackageID() kernel.ID          { return c.packageID }
func (c MovePackageBetweenShipmentsCommand) FromShipmentID() kernel.ID     { return c.fromShipmentID }
func (c MovePackageBetweenShipmentsCommand) ToShipmentID() kernel.ID       { return c.toShipmentID }
func (c MovePackageBetweenShipmentsCommand) AgentID() kernel.ID            { return c.agentID }
func (c MovePackageBetweenShipmentsCommand) Reason() parcel.MovementReason { return c.reason }
func (c MovePackageBetweenShipmentsCommand) Notes() string                 { return c.notes }

func (c *MovePackageBetweenShipmentsCommand) setReason(reason string) error {
	r, err := parcel.ParseMovementReason(reason)
	if err != nil {
		return err
	}
	c.reason = r
	return nil
}

func (c *MovePackageBetweenShipmentsCommand) setNotes(notes string) error {
	v, err := kernel.OptionalText("notes", notes, parcel.MaxNotesLength)
	if err != nil {
		return err
	}
	c.notes = v
	return nil
}
