package ports

import (
	"context"

	"ledger/internal/core/domain/model/driver"
	"ledger/internal/core/domain/model/kernel"
)

// DriverRepository stores drivers and their shipment assignments.
type DriverRepository interface {
	// Add inserts a driver. Duplicate ids and license numbers are constraint
	// violations.
	Add(ctx context.Context, d *driver.Driver) error

	// GetForUpdate loads a driver and locks its row. Capacity checks run under
	// this lock so concurrent assignments to one driver are serialized.
	GetForUpdate(ctx context.Context, id kernel.ID) (*driver.Driver, error)

	// CountActiveAssignments counts the driver's undelivered assignments.
	CountActiveAssignments(ctx context.Context, driverID kernel.ID) (int64, error)

	AddAssignment(ctx context.Context, a *driver.Assignment) error
	GetAssignmentForUpdate(ctx context.Context, id kernel.UUID) (*driver.Assignment, error)
	UpdateAssignment(ctx context.Context, a *driver.Assignment) error
}
