package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is one database transaction shared by several repositories.
// Callers Begin, defer Rollback and Commit on success.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit returns an error when no transaction is active.
	Commit(ctx context.Context) error

	// Rollback returns an error when no transaction is active, which makes it
	// safe to defer after a successful Commit.
	Rollback(ctx context.Context) error

	// Repository accessors bind to the transaction started by Begin.
	ShipmentRepository() ShipmentRepository
	PackageRepository() PackageRepository
	DriverRepository() DriverRepository
	DirectoryRepository() DirectoryRepository
}
