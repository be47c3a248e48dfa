package commands

import (
	"context"

	"ledger/internal/core/domain/model/kernel"
	"ledger/internal/core/domain/model/parcel"
	"ledger/internal/pkg/retry"
)

// AddPackageToShipmentCommandHandler inserts the package and its open
// assignment in one transaction, so a package never exists without the
// assignment it was registered with.
type AddPackageToShipmentCommandHandler struct {
	uowFactory PackageUoWFactory
	policy     retry.Policy
}

func NewAddPackageToShipmentCommandHandler(
	uowFactory PackageUoWFactory,
	policy retry.Policy,
) AddPackageToShipmentCommandHandler {
	return AddPackageToShipmentCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

func (h AddPackageToShipmentCommandHandler) Handle(ctx context.Context, cmd AddPackageToShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return retry.Write(ctx, h.policy, func(ctx context.Context) error {
		return h.handle(ctx, cmd)
	})
}

func (h AddPackageToShipmentCommandHandler) handle(ctx context.Context, cmd AddPackageToShipmentCommand) error {
	now := kernel.Now()

	p, err := parcel.NewPackage(cmd.PackageID(), cmd.Weight(), cmd.Description(), now)
	if err != nil {
		return err
	}

	agentID := cmd.AgentID()
	assignment, err := parcel.NewAssignment(p.ID(), cmd.ShipmentID(), &agentID, "", now)
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

	repo := uow.PackageRepository()
	if err = repo.Add(ctx, p); err != nil {
		return err
	}
	if err = repo.AddAssignment(ctx, assignment); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
