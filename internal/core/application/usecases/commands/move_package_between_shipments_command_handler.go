package commands

import (
	"context"
	"errors"
	"fmt"

	"ledger/internal/core/domain/model/kernel"
	"ledger/internal/core/domain/model/parcel"
	"ledger/internal/pkg/errs"
	"ledger/internal/pkg/retry"
)

// MovePackageBetweenShipmentsCommandHandler closes the package's open
// assignment, opens one for the destination and logs the movement, all in one
// transaction. The open assignment row is locked first, so two concurrent
// moves of the same package cannot both close it.
//
// It fails with errs.ErrPreconditionFailed when the package has no open
// assignment or its open assignment belongs to a shipment other than the
// source.
type MovePackageBetweenShipmentsCommandHandler struct {
	uowFactory PackageUoWFactory
	policy     retry.Policy
}

func NewMovePackageBetweenShipmentsCommandHandler(
	uowFactory PackageUoWFactory,
	policy retry.Policy,
) MovePackageBetweenShipmentsCommandHandler {
	return MovePackageBetweenShipmentsCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

func (h MovePackageBetweenShipmentsCommandHandler) Handle(
	ctx context.Context,
	cmd MovePackageBetweenShipmentsCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return retry.Write(ctx, h.policy, func(ctx context.Context) error {
		return h.handle(ctx, cmd)
	})
}

func (h MovePackageBetweenShipmentsCommandHandler) handle(
	ctx context.Context,
	cmd MovePackageBetweenShipmentsCommand,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PackageRepository()
	open, err := repo.GetOpenAssignmentForUpdate(ctx, cmd.PackageID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewPreconditionFailedErrorWithCause(
			fmt.Sprintf("package %s is not assigned to shipment %s", cmd.PackageID(), cmd.FromShipmentID()), err)
	}
	if err != nil {
		return err
	}

	agentID := cmd.AgentID()
	next, movement, err := parcel.Transfer(
		open,
		cmd.FromShipmentID(), cmd.ToShipmentID(),
		&agentID,
		cmd.Reason(),
		cmd.Notes(),
		kernel.Now(),
	)
	if err != nil {
		return err
	}

	if err = repo.CloseAssignment(ctx, open); err != nil {
		return err
	}
	if err = repo.AddAssignment(ctx, next); err != nil {
		return err
	}
	if err = repo.AppendMovement(ctx, movement); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
