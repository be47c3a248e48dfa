package directoryrepo

import (
	"context"

	"ledger/internal/adapters/out/postgres/pgerr"
	"ledger/internal/core/domain/model/directory"

	"gorm.io/gorm"
)

// GormDirectoryRepository implements ports.DirectoryRepository using GORM.
type GormDirectoryRepository struct {
	db *gorm.DB
}

func NewGormDirectoryRepository(db *gorm.DB) *GormDirectoryRepository {
	return &GormDirectoryRepository{db: db}
}

func (r *GormDirectoryRepository) AddCustomer(ctx context.Context, c *directory.Customer) error {
	dto := customerFromDomain(c)
	return pgerr.Translate("add customer", r.db.WithContext(ctx).Create(&dto).Error)
}

// AddLocation fails with a constraint violation when the parent does not exist.
func (r *GormDirectoryRepository) AddLocation(ctx context.Context, l *directory.Location) error {
	dto := locationFromDomain(l)
	return pgerr.Translate("add location", r.db.WithContext(ctx).Create(&dto).Error)
}

func (r *GormDirectoryRepository) AddAgent(ctx context.Context, a *directory.Agent) error {
	dto := agentFromDomain(a)
	return pgerr.Translate("add agent", r.db.WithContext(ctx).Create(&dto).Error)
}
