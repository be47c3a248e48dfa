package shipment

import (
	"errors"
	"time"

	"ledger/internal/core/domain/model/kernel"
	"ledger/internal/pkg/errs"
)

// MaxNotesLength bounds free-text notes attached to status changes.
const MaxNotesLength = 1000

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment was not created
	// through NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")
	// ErrEstimatedDeliveryIsRequired is returned for a zero estimated delivery time.
	ErrEstimatedDeliveryIsRequired = errs.NewValueIsRequiredError("estimatedDelivery")
)

// Shipment is the aggregate root for a consignment. Its status is changed only
// through ChangeStatus, which returns the audit entry the caller must persist
// in the same transaction as the new status.
//
// Invariants:
//   - id, sender, recipient, origin and destination are valid ids
//   - status is one of the four valid statuses
//   - actualDelivery, once set, is never cleared by a status change
type Shipment struct {
	id                kernel.ID
	senderID          kernel.ID
	recipientID       kernel.ID
	originID          kernel.ID
	destinationID     kernel.ID
	status            Status
	createdAt         time.Time
	estimatedDelivery time.Time
	actualDelivery    *time.Time

	isConstructed bool
}

// NewShipment creates a pending shipment.
//
// Example:
//
//	s, err := shipment.NewShipment(
//	    kernel.MustID(1001),
//	    kernel.MustID(1), kernel.MustID(2), // sender, recipient
//	    kernel.MustID(1), kernel.MustID(2), // origin, destination
//	    kernel.Now().Add(48*time.Hour),
//	    kernel.Now(),
//	)
func NewShipment(
	id, senderID, recipientID, originID, destinationID kernel.ID,
	estimatedDelivery time.Time,
	createdAt time.Time,
) (*Shipment, error) {
	s := &Shipment{
		status:        Pending,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setIDs(id, senderID, recipientID, originID, destinationID),
		s.setEstimatedDelivery(estimatedDelivery),
		requireTime("createdAt", createdAt),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment rebuilds a shipment read from storage.
func RestoreShipment(
	id, senderID, recipientID, originID, destinationID kernel.ID,
	status Status,
	createdAt, estimatedDelivery time.Time,
	actualDelivery *time.Time,
) (*Shipment, error) {
	s := &Shipment{
		createdAt:      createdAt,
		actualDelivery: actualDelivery,
		isConstructed:  true,
	}

	if err := errors.Join(
		s.setIDs(id, senderID, recipientID, originID, destinationID),
		s.setEstimatedDelivery(estimatedDelivery),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	s.status = status

	return s, nil
}

func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

func (s *Shipment) ID() kernel.ID                { return s.id }
func (s *Shipment) SenderID() kernel.ID          { return s.senderID }
func (s *Shipment) RecipientID() kernel.ID       { return s.recipientID }
func (s *Shipment) OriginID() kernel.ID          { return s.originID }
func (s *Shipment) DestinationID() kernel.ID     { return s.destinationID }
func (s *Shipment) Status() Status               { return s.status }
func (s *Shipment) CreatedAt() time.Time         { return s.createdAt }
func (s *Shipment) EstimatedDelivery() time.Time { return s.estimatedDelivery }
func (s *Shipment) ActualDelivery() *time.Time   { return s.actualDelivery }

// IsDelayed reports whether the shipment is still open past its estimate as of asOf.
func (s *Shipment) IsDelayed(asOf time.Time) bool {
	if !s.status.IsOpen() || !s.estimatedDelivery.Before(asOf) {
		return false
	}
	return s.actualDelivery == nil || s.actualDelivery.After(s.estimatedDelivery)
}

// ChangeStatus sets the shipment status and returns the log entry recording it.
//
// Any valid status is accepted from any current status. Moving to Delivered
// stamps the actual delivery time with at unless it is already set.
func (s *Shipment) ChangeStatus(
	status Status,
	agentID, locationID *kernel.ID,
	notes string,
	at time.Time,
) (*StatusLogEntry, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := requireTime("timestamp", at); err != nil {
		return nil, err
	}
	notes, err := kernel.OptionalText("notes", notes, MaxNotesLength)
	if err != nil {
		return nil, err
	}

	s.status = status
	if status == Delivered && s.actualDelivery == nil {
		delivered := at
		s.actualDelivery = &delivered
	}

	return &StatusLogEntry{
		id:            kernel.NewUUID(),
		shipmentID:    s.id,
		locationID:    locationID,
		agentID:       agentID,
		at:            at,
		status:        status,
		notes:         notes,
		isConstructed: true,
	}, nil
}

func (s *Shipment) setIDs(id, senderID, recipientID, originID, destinationID kernel.ID) error {
	if err := errors.Join(
		id.Validate(),
		senderID.Validate(),
		recipientID.Validate(),
		originID.Validate(),
		destinationID.Validate(),
	); err != nil {
		return err
	}
	s.id = id
	s.senderID = senderID
	s.recipientID = recipientID
	s.originID = originID
	s.destinationID = destinationID
	return nil
}

func (s *Shipment) setEstimatedDelivery(t time.Time) error {
	if t.IsZero() {
		return ErrEstimatedDeliveryIsRequired
	}
	s.estimatedDelivery = t
	return nil
}

func requireTime(paramName string, t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}
