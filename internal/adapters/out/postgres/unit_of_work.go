// Package postgres is the PostgreSQL adapter of the ledger: schema
// initialisation, connection setup and a GORM-based Unit of Work that hands
// out transaction-bound repositories.
//
// Usage:
//
//	factory := postgres.NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	repo := uow.DriverRepository()
//	d, err := repo.GetForUpdate(ctx, driverID) // row lock held until Commit
//	if err != nil {
//	    return err
//	}
//	// ... count, check capacity, insert
//
//	return uow.Commit(ctx)
//
// Transactions run at READ COMMITTED. Operations that read-then-write take
// row locks (SELECT ... FOR UPDATE) through the repositories instead of
// relying on a stricter isolation level.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ledger/internal/adapters/out/postgres/directoryrepo"
	"ledger/internal/adapters/out/postgres/driverrepo"
	"ledger/internal/adapters/out/postgres/parcelrepo"
	"ledger/internal/adapters/out/postgres/pgerr"
	"ledger/internal/adapters/out/postgres/shipmentrepo"
	"ledger/internal/core/ports"
	"ledger/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates a fresh GormUnitOfWork per operation.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork wraps one GORM transaction. It is not safe for concurrent use;
// each goroutine needs its own instance from the factory.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts a READ COMMITTED transaction. Calling Begin again while a
// transaction is active is a no-op. A failed BEGIN is reported as transient:
// nothing has happened yet, so the whole operation may be retried.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin(&sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if tx.Error != nil {
		if errors.Is(tx.Error, context.DeadlineExceeded) || errors.Is(tx.Error, context.Canceled) {
			return pgerr.Translate("begin", tx.Error)
		}
		return errs.NewTransientError("begin", tx.Error)
	}

	uow.tx = tx
	return nil
}

// Commit finalises the transaction. When the server rejects the commit (for
// example a serialization failure) the error is classified like any other
// statement error. When the connection fails mid-commit the outcome is unknown
// and the error is returned unclassified, which keeps it out of the retry path.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgerr.Translate("commit", err)
	}
	return fmt.Errorf("commit outcome unknown: %w", err)
}

// Rollback discards the transaction. It returns gorm.ErrInvalidTransaction
// when nothing is active, so deferring it after Commit is harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	return shipmentrepo.NewGormShipmentRepository(uow.conn())
}

func (uow *GormUnitOfWork) PackageRepository() ports.PackageRepository {
	return parcelrepo.NewGormPackageRepository(uow.conn())
}

func (uow *GormUnitOfWork) DriverRepository() ports.DriverRepository {
	return driverrepo.NewGormDriverRepository(uow.conn())
}

func (uow *GormUnitOfWork) DirectoryRepository() ports.DirectoryRepository {
	return directoryrepo.NewGormDirectoryRepository(uow.conn())
}

// conn returns the active transaction, or the pool when none is active.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
