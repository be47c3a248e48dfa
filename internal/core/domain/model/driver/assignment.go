package driver

import (
	"errors"
	"fmt"
	"time"

	"ledger/internal/core/domain/model/kernel"
	"ledger/internal/pkg/errs"
)

var ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment constructor")

// Assignment puts one shipment on a driver's route. It counts against the
// driver's capacity until it is marked delivered.
type Assignment struct {
	id                kernel.UUID
	driverID          kernel.ID
	shipmentID        kernel.ID
	startLocationID   kernel.ID
	endLocationID     kernel.ID
	delivered         bool
	assignedAt        time.Time
	estimatedPickup   time.Time
	actualPickup      *time.Time
	estimatedDelivery time.Time
	actualDelivery    *time.Time

	isConstructed bool
}

// NewAssignment creates an undelivered assignment. The estimated delivery must
// not precede the estimated pickup.
func NewAssignment(
	id kernel.UUID,
	driverID, shipmentID, startLocationID, endLocationID kernel.ID,
	estimatedPickup, estimatedDelivery time.Time,
	assignedAt time.Time,
) (*Assignment, error) {
	if err := errors.Join(
		id.Validate(),
		driverID.Validate(),
		shipmentID.Validate(),
		startLocationID.Validate(),
		endLocationID.Validate(),
		validateWindow(estimatedPickup, estimatedDelivery),
	); err != nil {
		return nil, err
	}
	if assignedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("assignedAt")
	}

	return &Assignment{
		id:                id,
		driverID:          driverID,
		shipmentID:        shipmentID,
		startLocationID:   startLocationID,
		endLocationID:     endLocationID,
		assignedAt:        assignedAt,
		estimatedPickup:   estimatedPickup,
		estimatedDelivery: estimatedDelivery,
		isConstructed:     true,
	}, nil
}

// RestoreAssignment rebuilds an assignment read from storage.
func RestoreAssignment(
	id kernel.UUID,
	driverID, shipmentID, startLocationID, endLocationID kernel.ID,
	delivered bool,
	assignedAt, estimatedPickup time.Time,
	actualPickup *time.Time,
	estimatedDelivery time.Time,
	actualDelivery *time.Time,
) (*Assignment, error) {
	if err := errors.Join(
		id.Validate(),
		driverID.Validate(),
		shipmentID.Validate(),
		startLocationID.Validate(),
		endLocationID.Validate(),
	); err != nil {
		return nil, err
	}

	return &Assignment{
		id:                id,
		driverID:          driverID,
		shipmentID:        shipmentID,
		startLocationID:   startLocationID,
		endLocationID:     endLocationID,
		delivered:         delivered,
		assignedAt:        assignedAt,
		estimatedPickup:   estimatedPickup,
		actualPickup:      actualPickup,
		estimatedDelivery: estimatedDelivery,
		actualDelivery:    actualDelivery,
		isConstructed:     true,
	}, nil
}

func (a *Assignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

func (a *Assignment) ID() kernel.UUID              { return a.id }
func (a *Assignment) DriverID() kernel.ID          { return a.driverID }
func (a *Assignment) ShipmentID() kernel.ID        { return a.shipmentID }
func (a *Assignment) StartLocationID() kernel.ID   { return a.startLocationID }
func (a *Assignment) EndLocationID() kernel.ID     { return a.endLocationID }
func (a *Assignment) Delivered() bool              { return a.delivered }
func (a *Assignment) AssignedAt() time.Time        { return a.assignedAt }
func (a *Assignment) EstimatedPickup() time.Time   { return a.estimatedPickup }
func (a *Assignment) ActualPickup() *time.Time     { return a.actualPickup }
func (a *Assignment) EstimatedDelivery() time.Time { return a.estimatedDelivery }
func (a *Assignment) ActualDelivery() *time.Time   { return a.actualDelivery }

// MarkDelivered completes the assignment and frees the driver's capacity.
func (a *Assignment) MarkDelivered(at time.Time) error {
	if a.delivered {
		return errs.NewPreconditionFailedError(fmt.Sprintf("driver assignment %s is already delivered", a.id))
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("actualDelivery")
	}
	delivered := at
	a.delivered = true
	a.actualDelivery = &delivered
	return nil
}

func validateWindow(pickup, delivery time.Time) error {
	if pickup.IsZero() {
		return errs.NewValueIsRequiredError("estimatedPickup")
	}
	if delivery.IsZero() {
		return errs.NewValueIsRequiredError("estimatedDelivery")
	}
	if delivery.Before(pickup) {
		return errs.NewValueIsInvalidErrorWithCause("estimatedDelivery",
			fmt.Errorf("%s is before estimated pickup %s", delivery.Format(time.RFC3339), pickup.Format(time.RFC3339)))
	}
	return nil
}
