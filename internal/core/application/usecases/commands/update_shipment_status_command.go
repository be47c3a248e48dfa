package commands

import (
	"errors"

	"ledger/internal/core/domain/model/kernel"
	"ledger/internal/core/domain/model/shipment"
	"ledger/internal/pkg/guard"
)

var ErrUpdateShipmentStatusCommandIsNotConstructed = errors.New(
	"UpdateShipmentStatusCommand must be created via NewUpdateShipmentStatusCommand constructor",
)

// UpdateShipmentStatusCommand changes a shipment's status on behalf of an agent.
// The location is optional and, when given, is recorded in the status log.
type UpdateShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.ID
	status     shipment.Status
	agentID    kernel.ID
	notes      string
	locationID *kernel.ID

	guard guard.ConstructorGuard
}

func NewUpdateShipmentStatusCommand(
	shipmentID int64,
	status string,
	agentID int64,
	notes string,
	locationID *int64,
) (UpdateShipmentStatusCommand, error) {
	cmd := UpdateShipmentStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setID(&cmd.shipmentID, "shipmentID", shipmentID),
		cmd.setStatus(status),
		setID(&cmd.agentID, "agentID", agentID),
		cmd.setNotes(notes),
		cmd.setLocationID(locationID),
	); err != nil {
		return UpdateShipmentStatusCommand{}, err
	}

	return cmd, nil
}

func (c UpdateShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentStatusCommandIsNotConstructed)
}

func (c UpdateShipmentStatusCommand) ShipmentID() kernel.ID   { return c.shipmentID }
func (c UpdateShipmentStatusCommand) Status() shipment.Status { return c.status }
func (c UpdateShipmentStatusCommand) AgentID() kernel.ID      { return c.agentID }
func (c UpdateShipmentStatusCommand) Notes() string           { return c.notes }
func (c UpdateShipmentStatusCommand) LocationID() *kernel.ID  { return c.locationID }

func (c *UpdateShipmentStatusCommand) setStatus(status string) error {
	s, err := shipment.ParseStatus(status)
	if err != nil {
		return err
	}
	c.status = s
	return nil
}

func (c *UpdateShipmentStatusCommand) setNotes(notes string) error {
	v, err := kernel.OptionalText("notes", notes, shipment.MaxNotesLength)
	if err != nil {
		return err
	}
	c.notes = v
	return nil
}

func (c *UpdateShipmentStatusCommand) setLocationID(locationID *int64) error {
	id, err := kernel.NewOptionalID("locationID", locationID)
	if err != nil {
		return err
	}
	c.locationID = id
	return nil
}
