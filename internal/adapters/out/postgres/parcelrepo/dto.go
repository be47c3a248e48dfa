// Package parcelrepo persists packages, package-to-shipment assignments and
// the package movement log with GORM.
package parcelrepo

import (
	"time"

	"ledger/internal/core/domain/model/kernel"
	"ledger/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PackageDTO struct {
	PackageID   int64           `gorm:"column:package_id;primaryKey;autoIncrement:false"`
	Weight      decimal.Decimal `gorm:"column:weight;type:numeric(8,2)"`
	Description string          `gorm:"column:description"`
	CreatedAt   time.Time       `gorm:"column:created_at"`
	IsActive    bool            `gorm:"column:is_active"`
}

func (PackageDTO) TableName() string {
	return "package"
}

type AssignmentDTO struct {
	AssignmentID      uuid.UUID  `gorm:"column:assignment_id;type:uuid;primaryKey"`
	PackageID         int64      `gorm:"column:package_id"`
	ShipmentID        int64      `gorm:"column:shipment_id"`
	AssignedAt        time.Time  `gorm:"column:assigned_at"`
	RemovedAt         *time.Time `gorm:"column:removed_at"`
	AssignedByAgentID *int64     `gorm:"column:assigned_by_agent_id"`
	RemovalReason     *string    `gorm:"column:removal_reason"`
	Notes             string     `gorm:"column:notes"`
}

func (AssignmentDTO) TableName() string {
	return "package_shipment_assignment"
}

type MovementDTO struct {
	LogID          uuid.UUID `gorm:"column:log_id;type:uuid;primaryKey"`
	PackageID      int64     `gorm:"column:package_id"`
	FromShipmentID *int64    `gorm:"column:from_shipment_id"`
	ToShipmentID   *int64    `gorm:"column:to_shipment_id"`
	MovedAt        time.Time `gorm:"column:moved_at"`
	MovedByAgentID *int64    `gorm:"column:moved_by_agent_id"`
	MovementReason string    `gorm:"column:movement_reason"`
	Notes          string    `gorm:"column:notes"`
}

func (MovementDTO) TableName() string {
	return "package_movement_log"
}

func packageFromDomain(p *parcel.Package) PackageDTO {
	return PackageDTO{
		PackageID:   p.ID().Int64(),
		Weight:      p.Weight(),
		Description: p.Description(),
		CreatedAt:   p.CreatedAt(),
		IsActive:    p.IsActive(),
	}
}

func packageToDomain(dto PackageDTO) (*parcel.Package, error) {
	id, err := kernel.NewID("packageID", dto.PackageID)
	if err != nil {
		return nil, err
	}
	return parcel.RestorePackage(id, dto.Weight, dto.Description, dto.CreatedAt.UTC(), dto.IsActive)
}

func assignmentFromDomain(a *parcel.Assignment) AssignmentDTO {
	var reason *string
	if r := a.RemovalReason(); r != nil {
		v := r.String()
		reason = &v
	}
	return AssignmentDTO{
		AssignmentID:      a.ID().Bytes(),
		PackageID:         a.PackageID().Int64(),
		ShipmentID:        a.ShipmentID().Int64(),
		AssignedAt:        a.AssignedAt(),
		RemovedAt:         a.RemovedAt(),
		AssignedByAgentID: kernel.Int64Ptr(a.AgentID()),
		RemovalReason:     reason,
		Notes:             a.Notes(),
	}
}

func assignmentToDomain(dto AssignmentDTO) (*parcel.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.AssignmentID[:])
	if err != nil {
		return nil, err
	}
	packageID, err := kernel.NewID("packageID", dto.PackageID)
	if err != nil {
		return nil, err
	}
	shipmentID, err := kernel.NewID("shipmentID", dto.ShipmentID)
	if err != nil {
		return nil, err
	}

	var reason *parcel.RemovalReason
	if dto.RemovalReason != nil {
		r := parcel.RemovalReason(*dto.RemovalReason)
		reason = &r
	}
	var removedAt *time.Time
	if dto.RemovedAt != nil {
		t := dto.RemovedAt.UTC()
		removedAt = &t
	}

	return parcel.RestoreAssignment(
		id,
		packageID,
		shipmentID,
		dto.AssignedAt.UTC(),
		removedAt,
		kernel.IDFromPtr(dto.AssignedByAgentID),
		reason,
		dto.Notes,
	)
}

func movementFromDomain(m *parcel.Movement) MovementDTO {
	return MovementDTO{
		LogID:          m.ID().Bytes(),
		PackageID:      m.PackageID().Int64(),
		FromShipmentID: kernel.Int64Ptr(m.FromShipmentID()),
		ToShipmentID:   kernel.Int64Ptr(m.ToShipmentID()),
		MovedAt:        m.MovedAt(),
		MovedByAgentID: kernel.Int64Ptr(m.AgentID()),
		MovementReason: m.Reason().String(),
		Notes:          m.Notes(),
	}
}

func movementToDomain(dto MovementDTO) (*parcel.Movement, error) {
	id, err := kernel.UUIDFromBytes(dto.LogID[:])
	if err != nil {
		return nil, err
	}
	packageID, err := kernel.NewID("packageID", dto.PackageID)
	if err != nil {
		return nil, err
	}
	return parcel.RestoreMovement(
		id,
		packageID,
		kernel.IDFromPtr(dto.FromShipmentID),
		kernel.IDFromPtr(dto.ToShipmentID),
		dto.MovedAt.UTC(),
		kernel.IDFromPtr(dto.MovedByAgentID),
		parcel.MovementReason(dto.MovementReason),
		dto.Notes,
	)
}
