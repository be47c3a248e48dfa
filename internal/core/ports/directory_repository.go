package ports

import (
	"context"

	"ledger/internal/core/domain/model/directory"
)

// DirectoryRepository registers the reference records shipments refer to.
type DirectoryRepository interface {
	AddCustomer(ctx context.Context, c *directory.Customer) error
	AddLocation(ctx context.Context, l *directory.Location) error
	AddAgent(ctx context.Context, a *directory.Agent) error
}
