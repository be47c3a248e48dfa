package parcelrepo

import (
	"context"
	"errors"
	"fmt"

	"ledger/internal/adapters/out/postgres/pgerr"
	"ledger/internal/core/domain/model/kernel"
	"ledger/internal/core/domain/model/parcel"
	"ledger/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPackageRepository implements ports.PackageRepository using GORM.
type GormPackageRepository struct {
	db *gorm.DB
}

func NewGormPackageRepository(db *gorm.DB) *GormPackageRepository {
	return &GormPackageRepository{db: db}
}

func (r *GormPackageRepository) Add(ctx context.Context, p *parcel.Package) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := packageFromDomain(p)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate("add package", err)
	}
	return nil
}

func (r *GormPackageRepository) Get(ctx context.Context, id kernel.ID) (*parcel.Package, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PackageDTO
	if err := r.db.WithContext(ctx).Take(&dto, "package_id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("package", id.Int64())
		}
		return nil, pgerr.Translate("get package", err)
	}
	return packageToDomain(dto)
}

func (r *GormPackageRepository) AddAssignment(ctx context.Context, a *parcel.Assignment) error {
	if err := a.Validate(); err != nil {
		return err
	}

	dto := assignmentFromDomain(a)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate("add package assignment", err)
	}
	return nil
}

func (r *GormPackageRepository) GetOpenAssignmentForUpdate(ctx context.Context, packageID kernel.ID) (*parcel.Assignment, error) {
	if err := packageID.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("package_id = ? AND removed_at IS NULL", packageID.Int64()).
		Take(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("open assignment for package", packageID.Int64())
		}
		return nil, pgerr.Translate("get open package assignment", err)
	}
	return assignmentToDomain(dto)
}

// CloseAssignment writes removed_at and removal_reason only if the stored row
// is still open.
func (r *GormPackageRepository) CloseAssignment(ctx context.Context, a *parcel.Assignment) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if a.IsOpen() || a.RemovalReason() == nil {
		return errs.NewValueIsInvalidErrorWithCause("assignment", errors.New("assignment is not closed"))
	}

	result := r.db.WithContext(ctx).
		Model(&AssignmentDTO{}).
		Where("assignment_id = ? AND removed_at IS NULL", a.ID().Bytes()).
		Updates(map[string]any{
			"removed_at":     *a.RemovedAt(),
			"removal_reason": a.RemovalReason().String(),
		})
	if result.Error != nil {
		return pgerr.Translate("close package assignment", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewPreconditionFailedError(fmt.Sprintf("assignment %s is not open", a.ID()))
	}
	return nil
}

func (r *GormPackageRepository) ListAssignments(ctx context.Context, packageID kernel.ID) ([]*parcel.Assignment, error) {
	var dtos []AssignmentDTO
	if err := r.db.WithContext(ctx).
		Where("package_id = ?", packageID.Int64()).
		Order("assigned_at, removed_at NULLS LAST").
		Find(&dtos).Error; err != nil {
		return nil, pgerr.Translate("list package assignments", err)
	}

	assignments := make([]*parcel.Assignment, 0, len(dtos))
	for _, dto := range dtos {
		a, err := assignmentToDomain(dto)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, nil
}

func (r *GormPackageRepository) AppendMovement(ctx context.Context, m *parcel.Movement) error {
	dto := movementFromDomain(m)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate("append package movement", err)
	}
	return nil
}

func (r *GormPackageRepository) ListMovements(ctx context.Context, packageID kernel.ID) ([]*parcel.Movement, error) {
	var dtos []MovementDTO
	if err := r.db.WithContext(ctx).
		Where("package_id = ?", packageID.Int64()).
		Order("moved_at").
		Find(&dtos).Error; err != nil {
		return nil, pgerr.Translate("list package movements", err)
	}

	movements := make([]*parcel.Movement, 0, len(dtos))
	for _, dto := range dtos {
		m, err := movementToDomain(dto)
		if err != nil {
			return nil, err
		}
		movements = append(movements, m)
	}
	return movements, nil
}
