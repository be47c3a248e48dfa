package ports

import (
	"context"

	"ledger/internal/core/domain/model/kernel"
	"ledger/internal/core/domain/model/parcel"
)

// PackageRepository stores packages, their shipment assignments and the
// package movement log.
type PackageRepository interface {
	Add(ctx context.Context, p *parcel.Package) error
	Get(ctx context.Context, id kernel.ID) (*parcel.Package, error)

	// AddAssignment inserts an assignment. Inserting a second open assignment
	// for the same package is a constraint violation.
	AddAssignment(ctx context.Context, a *parcel.Assignment) error

	// GetOpenAssignmentForUpdate locks and returns the package's open
	// assignment, or errs.ErrObjectNotFound when it has none.
	GetOpenAssignmentForUpdate(ctx context.Context, packageID kernel.ID) (*parcel.Assignment, error)

	// CloseAssignment persists a closed assignment. It fails with
	// errs.ErrPreconditionFailed when the stored row is no longer open.
	CloseAssignment(ctx context.Context, a *parcel.Assignment) error

	// ListAssignments returns every assignment of a package, oldest first.
	ListAssignments(ctx context.Context, packageID kernel.ID) ([]*parcel.Assignment, error)

	AppendMovement(ctx context.Context, m *parcel.Movement) error

	// ListMovements returns the movement log of a package, oldest first.
	ListMovements(ctx context.Context, packageID kernel.ID) ([]*parcel.Movement, error)
}
