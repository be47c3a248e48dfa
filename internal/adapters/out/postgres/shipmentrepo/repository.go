package shipmentrepo

import (
	"context"
	"errors"

	"ledger/internal/adapters/out/postgres/pgerr"
	"ledger/internal/core/domain/model/kernel"
	"ledger/internal/core/domain/model/shipment"
	"ledger/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormShipmentRepository implements ports.ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db *gorm.DB
}

func NewGormShipmentRepository(db *gorm.DB) *GormShipmentRepository {
	return &GormShipmentRepository{db: db}
}

func (r *GormShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := fromDomain(s)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate("add shipment", err)
	}
	return nil
}

func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.ID) (*shipment.Shipment, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate issues SELECT ... FOR UPDATE; it only holds the lock inside a transaction.
func (r *GormShipmentRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*shipment.Shipment, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormShipmentRepository) get(q *gorm.DB, id kernel.ID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := q.Take(&dto, "shipment_id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id.Int64())
		}
		return nil, pgerr.Translate("get shipment", err)
	}

	return toDomain(dto)
}

func (r *GormShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	if err := s.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("shipment_id = ?", s.ID().Int64()).
		Updates(map[string]any{
			"status":          s.Status().String(),
			"actual_delivery": s.ActualDelivery(),
		})
	if result.Error != nil {
		return pgerr.Translate("update shipment", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipment", s.ID().Int64())
	}
	return nil
}

func (r *GormShipmentRepository) AppendStatusLog(ctx context.Context, entry *shipment.StatusLogEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := logFromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate("append status log", err)
	}
	return nil
}

// ListStatusLog returns the log of a shipment, newest first.
func (r *GormShipmentRepository) ListStatusLog(ctx context.Context, shipmentID kernel.ID) ([]*shipment.StatusLogEntry, error) {
	var dtos []StatusLogDTO
	if err := r.db.WithContext(ctx).
		Where("shipment_id = ?", shipmentID.Int64()).
		Order(`"timestamp" DESC`).
		Find(&dtos).Error; err != nil {
		return nil, pgerr.Translate("list status log", err)
	}

	entries := make([]*shipment.StatusLogEntry, 0, len(dtos))
	for _, dto := range dtos {
		e, err := logToDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}
