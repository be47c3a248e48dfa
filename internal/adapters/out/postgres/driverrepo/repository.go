package driverrepo

import (
	"context"
	"errors"

	"ledger/internal/adapters/out/postgres/pgerr"
	"ledger/internal/core/domain/model/driver"
	"ledger/internal/core/domain/model/kernel"
	"ledger/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDriverRepository implements ports.DriverRepository using GORM.
type GormDriverRepository struct {
	db *gorm.DB
}

func NewGormDriverRepository(db *gorm.DB) *GormDriverRepository {
	return &GormDriverRepository{db: db}
}

func (r *GormDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	if err := d.Validate(); err != nil {
		return err
	}

	dto := driverFromDomain(d)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate("add driver", err)
	}
	return nil
}

// GetForUpdate locks the driver row for the rest of the transaction.
func (r *GormDriverRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*driver.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Take(&dto, "driver_id = ?", id.Int64()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id.Int64())
		}
		return nil, pgerr.Translate("get driver", err)
	}
	return driverToDomain(dto)
}

func (r *GormDriverRepository) CountActiveAssignments(ctx context.Context, driverID kernel.ID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&AssignmentDTO{}).
		Where("driver_id = ? AND delivered = FALSE", driverID.Int64()).
		Count(&count).Error
	if err != nil {
		return 0, pgerr.Translate("count active driver assignments", err)
	}
	return count, nil
}

func (r *GormDriverRepository) AddAssignment(ctx context.Context, a *driver.Assignment) error {
	if err := a.Validate(); err != nil {
		return err
	}

	dto := assignmentFromDomain(a)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate("add driver assignment", err)
	}
	return nil
}

func (r *GormDriverRepository) GetAssignmentForUpdate(ctx context.Context, id kernel.UUID) (*driver.Assignment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Take(&dto, "assignment_id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver assignment", id.String())
		}
		return nil, pgerr.Translate("get driver assignment", err)
	}
	return assignmentToDomain(dto)
}

func (r *GormDriverRepository) UpdateAssignment(ctx context.Context, a *driver.Assignment) error {
	if err := a.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&AssignmentDTO{}).
		Where("assignment_id = ?", a.ID().Bytes()).
		Updates(map[string]any{
			"delivered":            a.Delivered(),
			"actual_pickup_time":   a.ActualPickup(),
			"actual_delivery_time": a.ActualDelivery(),
		})
	if result.Error != nil {
		return pgerr.Translate("update driver assignment", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("driver assignment", a.ID().String())
	}
	return nil
}
