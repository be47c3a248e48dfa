package commands

import (
	"context"

	"ledger/internal/core/domain/model/kernel"
	"ledger/internal/core/domain/model/shipment"
	"ledger/internal/pkg/retry"
)

// CreateShipmentCommandHandler inserts a shipment in pending status with the
// current time as its creation time. Unknown customers or locations and
// duplicate ids surface as errs.ErrConstraintViolation.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	policy     retry.Policy
}

func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory, policy retry.Policy) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

func (h CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return retry.Write(ctx, h.policy, func(ctx context.Context) error {
		return h.handle(ctx, cmd)
	})
}

func (h CreateShipmentCommandHandler) handle(ctx context.Context, cmd CreateShipmentCommand) error {
	s, err := shipment.NewShipment(
		cmd.ShipmentID(),
		cmd.SenderID(), cmd.RecipientID(),
		cmd.OriginID(), cmd.DestinationID(),
		cmd.EstimatedDelivery(),
		kernel.Now(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShipmentRepository().Add(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
