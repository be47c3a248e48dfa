package commands

import (
	"errors"
	"time"

	"ledger/internal/core/domain/model/kernel"
	"ledger/internal/core/domain/model/shipment"
	"ledger/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand registers a new pending shipment between two customers.
//
// Example:
//
//	cmd, err := NewCreateShipmentCommand(1001, 1, 2, 1, 2, time.Now().Add(48*time.Hour))
//	if err != nil {
//	    return fmt.Errorf("invalid shipment: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID        kernel.ID
	senderID          kernel.ID
	recipientID       kernel.ID
	originID          kernel.ID
	destinationID     kernel.ID
	estimatedDelivery time.Time

	guard guard.ConstructorGuard
}

func NewCreateShipmentCommand(
	shipmentID, senderID, recipientID, originID, destinationID int64,
	estimatedDelivery time.Time,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setID(&cmd.shipmentID, "shipmentID", shipmentID),
		setID(&cmd.senderID, "senderID", senderID),
		setID(&cmd.recipientID, "recipientID", recipientID),
		setID(&cmd.originID, "originID", originID),
		setID(&cmd.destinationID, "destinationID", destinationID),
		cmd.setEstimatedDelivery(estimatedDelivery),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

func (c CreateShipmentCommand) ShipmentID() kernel.ID        { return c.shipmentID }
func (c CreateShipmentCommand) SenderID() kernel.ID          { return c.senderID }
func (c CreateShipmentCommand) RecipientID() kernel.ID       { return c.recipientID }
func (c CreateShipmentCommand) OriginID() kernel.ID          { return c.originID }
func (c CreateShipmentCommand) DestinationID() kernel.ID     { return c.destinationID }
func (c CreateShipmentCommand) EstimatedDelivery() time.Time { return c.estimatedDelivery }

func (c *CreateShipmentCommand) setEstimatedDelivery(t time.Time) error {
	if t.IsZero() {
		return shipment.ErrEstimatedDeliveryIsRequired
	}
	c.estimatedDelivery = t.UTC()
	return nil
}

// setID validates a positive identifier and stores it in dst.
func setID(dst *kernel.ID, paramName string, value int64) error {
	id, err := kernel.NewID(paramName, value)
	if err != nil {
		return err
	}
	*dst = id
	return nil
}
