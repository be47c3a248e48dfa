package commands

import (
	"context"

	"ledger/internal/core/domain/model/kernel"
	"ledger/internal/pkg/retry"
)

// UpdateShipmentStatusCommandHandler locks the shipment row, writes the new
// status and appends the matching status log entry in one transaction.
//
// Example:
//
//	cmd, _ := NewUpdateShipmentStatusCommand(1001, "in_transit", 1, "left hub", nil)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // no such shipment
//	}
type UpdateShipmentStatusCommandHandler struct {
	uowFactory ShipmentUoWFactory
	policy     retry.Policy
}

func NewUpdateShipmentStatusCommandHandler(
	uowFactory ShipmentUoWFactory,
	policy retry.Policy,
) UpdateShipmentStatusCommandHandler {
	return UpdateShipmentStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

func (h UpdateShipmentStatusCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return retry.Write(ctx, h.policy, func(ctx context.Context) error {
		return h.handle(ctx, cmd)
	})
}

func (h UpdateShipmentStatusCommandHandler) handle(ctx context.Context, cmd UpdateShipmentStatusCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShipmentRepository()
	s, err := repo.GetForUpdate(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	agentID := cmd.AgentID()
	entry, err := s.ChangeStatus(cmd.Status(), &agentID, cmd.LocationID(), cmd.Notes(), kernel.Now())
	if err != nil {
		return err
	}

	if err = repo.Update(ctx, s); err != nil {
		return err
	}
	if err = repo.AppendStatusLog(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
