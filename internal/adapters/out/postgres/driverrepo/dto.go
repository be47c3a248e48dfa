// Package driverrepo persists drivers and driver-to-shipment assignments with GORM.
package driverrepo

import (
	"time"

	"ledger/internal/core/domain/model/driver"
	"ledger/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type DriverDTO struct {
	DriverID      int64  `gorm:"column:driver_id;primaryKey;autoIncrement:false"`
	Name          string `gorm:"column:name"`
	LicenseNumber string `gorm:"column:license_number"`
	Contact       string `gorm:"column:contact"`
	CapacityLimit int    `gorm:"column:capacity_limit"`
}

func (DriverDTO) TableName() string {
	return "driver"
}

type AssignmentDTO struct {
	AssignmentID          uuid.UUID  `gorm:"column:assignment_id;type:uuid;primaryKey"`
	DriverID              int64      `gorm:"column:driver_id"`
	ShipmentID            int64      `gorm:"column:shipment_id"`
	StartLocationID       int64      `gorm:"column:start_location_id"`
	EndLocationID         int64      `gorm:"column:end_location_id"`
	Delivered             bool       `gorm:"column:delivered"`
	AssignedAt            time.Time  `gorm:"column:assigned_at"`
	EstimatedPickupTime   time.Time  `gorm:"column:estimated_pickup_time"`
	ActualPickupTime      *time.Time `gorm:"column:actual_pickup_time"`
	EstimatedDeliveryTime time.Time  `gorm:"column:estimated_delivery_time"`
	ActualDeliveryTime    *time.Time `gorm:"column:actual_delivery_time"`
}

func (AssignmentDTO) TableName() string {
	return "driver_shipment_assignment"
}

func driverFromDomain(d *driver.Driver) DriverDTO {
	return DriverDTO{
		DriverID:      d.ID().Int64(),
		Name:          d.Name(),
		LicenseNumber: d.LicenseNumber(),
		Contact:       d.Contact(),
		CapacityLimit: d.CapacityLimit(),
	}
}

func driverToDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.NewID("driverID", dto.DriverID)
	if err != nil {
		return nil, err
	}
	return driver.RestoreDriver(id, dto.Name, dto.LicenseNumber, dto.Contact, dto.CapacityLimit)
}

func assignmentFromDomain(a *driver.Assignment) AssignmentDTO {
	return AssignmentDTO{
		AssignmentID:          a.ID().Bytes(),
		DriverID:              a.DriverID().Int64(),
		ShipmentID:            a.ShipmentID().Int64(),
		StartLocationID:       a.StartLocationID().Int64(),
		EndLocationID:         a.EndLocationID().Int64(),
		Delivered:             a.Delivered(),
		AssignedAt:            a.AssignedAt(),
		EstimatedPickupTime:   a.EstimatedPickup(),
		ActualPickupTime:      a.ActualPickup(),
		EstimatedDeliveryTime: a.EstimatedDelivery(),
		ActualDeliveryTime:    a.ActualDelivery(),
	}
}

func assignmentToDomain(dto AssignmentDTO) (*driver.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.AssignmentID[:])
	if err != nil {
		return nil, err
	}
	ids := make([]kernel.ID, 0, 4)
	for _, v := range []int64{dto.DriverID, dto.ShipmentID, dto.StartLocationID, dto.EndLocationID} {
		kid, idErr := kernel.NewID("id", v)
		if idErr != nil {
			return nil, idErr
		}
		ids = append(ids, kid)
	}

	return driver.RestoreAssignment(
		id,
		ids[0], ids[1], ids[2], ids[3],
		dto.Delivered,
		dto.AssignedAt.UTC(),
		dto.EstimatedPickupTime.UTC(),
		utcPtr(dto.ActualPickupTime),
		dto.EstimatedDeliveryTime.UTC(),
		utcPtr(dto.ActualDeliveryTime),
	)
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
