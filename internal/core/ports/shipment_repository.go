// Package ports defines the persistence contracts of the shipment ledger.
// Adapters implement them; command handlers depend only on these interfaces.
//
// Errors returned by implementations are classified with the errs sentinels:
// a missing row is errs.ErrObjectNotFound, a rejected write is
// errs.ErrConstraintViolation, and failures that may succeed on retry wrap
// errs.ErrTransient or errs.ErrTimeout.
package ports

import (
	"context"

	"ledger/internal/core/domain/model/kernel"
	"ledger/internal/core/domain/model/shipment"
)

// ShipmentRepository stores shipments and their append-only status log.
type ShipmentRepository interface {
	// Add inserts a new shipment. A duplicate id or an unknown customer or
	// location is reported as a constraint violation.
	Add(ctx context.Context, s *shipment.Shipment) error

	// Get loads a shipment without locking it.
	Get(ctx context.Context, id kernel.ID) (*shipment.Shipment, error)

	// GetForUpdate loads a shipment and holds a row lock on it until the
	// surrounding transaction ends.
	GetForUpdate(ctx context.Context, id kernel.ID) (*shipment.Shipment, error)

	// Update writes the mutable state of a shipment: status and actual delivery.
	Update(ctx context.Context, s *shipment.Shipment) error

	// AppendStatusLog inserts one status log entry.
	AppendStatusLog(ctx context.Context, entry *shipment.StatusLogEntry) error

	// ListStatusLog returns the status log of a shipment, newest first.
	ListStatusLog(ctx context.Context, shipmentID kernel.ID) ([]*shipment.StatusLogEntry, error)
}
