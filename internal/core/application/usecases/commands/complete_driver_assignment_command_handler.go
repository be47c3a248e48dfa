package commands

import (
	"context"

	"ledger/internal/core/domain/model/kernel"
	"ledger/internal/pkg/retry"
)

// CompleteDriverAssignmentCommandHandler locks the assignment and marks it
// delivered. Completing an assignment twice fails with errs.ErrPreconditionFailed.
type CompleteDriverAssignmentCommandHandler struct {
	uowFactory DriverUoWFactory
	policy     retry.Policy
}

func NewCompleteDriverAssignmentCommandHandler(
	uowFactory DriverUoWFactory,
	policy retry.Policy,
) CompleteDriverAssignmentCommandHandler {
	return CompleteDriverAssignmentCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

func (h CompleteDriverAssignmentCommandHandler) Handle(ctx context.Context, cmd CompleteDriverAssignmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return retry.Write(ctx, h.policy, func(ctx context.Context) error {
		return h.handle(ctx, cmd)
	})
}

func (h CompleteDriverAssignmentCommandHandler) handle(ctx context.Context, cmd CompleteDriverAssignmentCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DriverRepository()
	assignment, err := repo.GetAssignmentForUpdate(ctx, cmd.AssignmentID())
	if err != nil {
		return err
	}

	if err = assignment.MarkDelivered(kernel.Now()); err != nil {
		return err
	}
	if err = repo.UpdateAssignment(ctx, assignment); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
