// Package commands contains the ledger operations that modify state.
// Every handler runs its work in one unit-of-work transaction and retries the
// whole transaction when it fails transiently.
package commands

import (
	"context"

	"ledger/internal/core/ports"
)

// Unit of Work interfaces narrowed to the repositories each handler touches.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	PackageRepoFactory interface {
		PackageRepository() ports.PackageRepository
	}

	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	DirectoryRepoFactory interface {
		DirectoryRepository() ports.DirectoryRepository
	}

	// ShipmentUoW serves shipment creation and status changes.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
	}

	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// PackageUoW serves package registration and movement.
	PackageUoW interface {
		TxManager
		PackageRepoFactory
	}

	PackageUoWFactory interface {
		Create() PackageUoW
	}

	// DriverUoW serves driver registration and assignments.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   repo := uow.DriverRepository()
	//   d, err := repo.GetForUpdate(ctx, driverID)
	//   // ... count, check capacity, insert
	//
	//   err = uow.Commit(ctx)
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	DriverUoWFactory interface {
		Create() DriverUoW
	}

	DirectoryUoW interface {
		TxManager
		DirectoryRepoFactory
	}

	DirectoryUoWFactory interface {
		Create() DirectoryUoW
	}
)
