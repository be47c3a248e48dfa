package commands

import (
	"context"

	"ledger/internal/core/domain/model/driver"
	"ledger/internal/core/domain/model/kernel"
	"ledger/internal/pkg/retry"
)

// AssignShipmentToDriverCommandHandler enforces the driver's capacity limit.
//
// The driver row is locked with SELECT ... FOR UPDATE before the undelivered
// assignments are counted, so two concurrent assignments to the same driver
// run one after the other and the second sees the first's insert. When the
// count already reaches the limit it returns a driver.CapacityExceededError
// and inserts nothing.
type AssignShipmentToDriverCommandHandler struct {
	uowFactory DriverUoWFactory
	policy     retry.Policy
}

func NewAssignShipmentToDriverCommandHandler(
	uowFactory DriverUoWFactory,
	policy retry.Policy,
) AssignShipmentToDriverCommandHandler {
	return AssignShipmentToDriverCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

func (h AssignShipmentToDriverCommandHandler) Handle(ctx context.Context, cmd AssignShipmentToDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return retry.Write(ctx, h.policy, func(ctx context.Context) error {
		return h.handle(ctx, cmd)
	})
}

func (h AssignShipmentToDriverCommandHandler) handle(ctx context.Context, cmd AssignShipmentToDriverCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DriverRepository()
	d, err := repo.GetForUpdate(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	active, err := repo.CountActiveAssignments(ctx, d.ID())
	if err != nil {
		return err
	}
	if err = d.CheckCapacity(active); err != nil {
		return err
	}

	assignment, err := driver.NewAssignment(
		cmd.AssignmentID(),
		d.ID(), cmd.ShipmentID(),
		cmd.StartLocationID(), cmd.EndLocationID(),
		cmd.EstimatedPickup(), cmd.EstimatedDelivery(),
		kernel.Now(),
	)
	if err != nil {
		return err
	}

	if err = repo.AddAssignment(ctx, assignment); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
