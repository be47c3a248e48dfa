package commands

import (
	"errors"

	"ledger/internal/core/domain/model/kernel"
	"ledger/internal/pkg/guard"
)

var ErrCompleteDriverAssignmentCommandIsNotConstructed = errors.New(
	"CompleteDriverAssignmentCommand must be created via NewCompleteDriverAssignmentCommand constructor",
)

// CompleteDriverAssignmentCommand marks a driver assignment delivered, which
// frees one unit of the driver's capacity.
type CompleteDriverAssignmentCommand struct {
	assignmentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCompleteDriverAssignmentCommand(assignmentID kernel.UUID) (CompleteDriverAssignmentCommand, error) {
	if err := assignmentID.Validate(); err != nil {
		return CompleteDriverAssignmentCommand{}, err
	}

	return CompleteDriverAssignmentCommand{
		assignmentID: assignmentID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteDriverAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDriverAssignmentCommandIsNotConstructed)
}

func (c CompleteDriverAssignmentCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}
