package commands

import (
	"errors"
	"fmt"
	"time"

	"ledger/internal/core/domain/model/kernel"
	"ledger/internal/pkg/errs"
	"ledger/internal/pkg/guard"
)

var ErrAssignShipmentToDriverCommandIsNotConstructed = errors.New(
	"AssignShipmentToDriverCommand must be created via NewAssignShipmentToDriverCommand constructor",
)

// AssignShipmentToDriverCommand gives a shipment leg to a driver. The
// assignment id is generated here so callers can refer to the assignment
// once the command succeeds.
//
// Example:
//
//	cmd, err := NewAssignShipmentToDriverCommand(1, 1001, 1, 2, pickup, pickup.Add(4*time.Hour))
//	if err != nil {
//	    return err
//	}
//	if err = handler.Handle(ctx, cmd); errors.Is(err, driver.ErrCapacityExceeded) {
//	    // driver is full
//	}
//	log.Printf("assignment %s created", cmd.AssignmentID())
type AssignShipmentToDriverCommand struct { //nolint:recvcheck //using for validation
	assignmentID      kernel.UUID
	driverID          kernel.ID
	shipmentID        kernel.ID
	startLocationID   kernel.ID
	endLocationID     kernel.ID
	estimatedPickup   time.Time
	estimatedDelivery time.Time

	guard guard.ConstructorGuard
}

func NewAssignShipmentToDriverCommand(
	driverID, shipmentID, startLocationID, endLocationID int64,
	estimatedPickup, estimatedDelivery time.Time,
) (AssignShipmentToDriverCommand, error) {
	cmd := AssignShipmentToDriverCommand{
		assignmentID: kernel.NewUUID(),
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setID(&cmd.driverID, "driverID", driverID),
		setID(&cmd.shipmentID, "shipmentID", shipmentID),
		setID(&cmd.startLocationID, "startLocationID", startLocationID),
		setID(&cmd.endLocationID, "endLocationID", endLocationID),
		cmd.setWindow(estimatedPickup, estimatedDelivery),
	); err != nil {
		return AssignShipmentToDriverCommand{}, err
	}

	return cmd, nil
}

func (c AssignShipmentToDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignShipmentToDriverCommandIsNotConstructed)
}

func (c AssignShipmentToDriverCommand) AssignmentID() kernel.UUID    { return c.assignmentID }
func (c AssignShipmentToDriverCommand) DriverID() kernel.ID          { return c.driverID }
func (c AssignShipmentToDriverCommand) ShipmentID() kernel.ID        { return c.shipmentID }
func (c AssignShipmentToDriverCommand) StartLocationID() kernel.ID   { return c.startLocationID }
func (c AssignShipmentToDriverCommand) EndLocationID() kernel.ID     { return c.endLocationID }
func (c AssignShipmentToDriverCommand) EstimatedPickup() time.Time   { return c.estimatedPickup }
func (c AssignShipmentToDriverCommand) EstimatedDelivery() time.Time { return c.estimatedDelivery }

func (c *AssignShipmentToDriverCommand) setWindow(pickup, delivery time.Time) error {
	if pickup.IsZero() {
		return errs.NewValueIsRequiredError("estimatedPickup")
	}
	if delivery.IsZero() {
		return errs.NewValueIsRequiredError("estimatedDelivery")
	}
	if delivery.Before(pickup) {
		return errs.NewValueIsInvalidErrorWithCause("estimatedDelivery",
			fmt.Errorf("delivery %s precedes pickup %s", delivery.Format(time.RFC3339), pickup.Format(time.RFC3339)))
	}
	c.estimatedPickup = pickup.UTC()
	c.estimatedDelivery = delivery.UTC()
	return nil
}
