// Package shipmentrepo persists shipments and the shipment status log with GORM.
package shipmentrepo

import (
	"time"

	"ledger/internal/core/domain/model/kernel"
	"ledger/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO maps the shipments table.
type ShipmentDTO struct {
	ShipmentID            int64      `gorm:"column:shipment_id;primaryKey;autoIncrement:false"`
	SenderID              int64      `gorm:"column:sender_id"`
	RecipientID           int64      `gorm:"column:recipient_id"`
	OriginID              int64      `gorm:"column:origin_id"`
	DestinationID         int64      `gorm:"column:destination_id"`
	Status                string     `gorm:"column:status"`
	CreatedTime           time.Time  `gorm:"column:created_time"`
	EstimatedDeliveryTime time.Time  `gorm:"column:estimated_delivery_time"`
	ActualDelivery        *time.Time `gorm:"column:actual_delivery"`
}

func (ShipmentDTO) TableName() string {
	return "shipments"
}

// StatusLogDTO maps the status_logs table.
type StatusLogDTO struct {
	LogID      uuid.UUID `gorm:"column:log_id;type:uuid;primaryKey"`
	ShipmentID int64     `gorm:"column:shipment_id"`
	LocationID *int64    `gorm:"column:location_id"`
	AgentID    *int64    `gorm:"column:agent_id"`
	Timestamp  time.Time `gorm:"column:timestamp"`
	Status     string    `gorm:"column:status"`
	Notes      string    `gorm:"column:notes"`
}

func (StatusLogDTO) TableName() string {
	return "status_logs"
}

func fromDomain(s *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ShipmentID:            s.ID().Int64(),
		SenderID:              s.SenderID().Int64(),
		RecipientID:           s.RecipientID().Int64(),
		OriginID:              s.OriginID().Int64(),
		DestinationID:         s.DestinationID().Int64(),
		Status:                s.Status().String(),
		CreatedTime:           s.CreatedAt(),
		EstimatedDeliveryTime: s.EstimatedDelivery(),
		ActualDelivery:        s.ActualDelivery(),
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	status, err := shipment.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	ids := make([]kernel.ID, 0, 5)
	for _, v := range []struct {
		name  string
		value int64
	}{
		{"shipmentID", dto.ShipmentID},
		{"senderID", dto.SenderID},
		{"recipientID", dto.RecipientID},
		{"originID", dto.OriginID},
		{"destinationID", dto.DestinationID},
	} {
		id, idErr := kernel.NewID(v.name, v.value)
		if idErr != nil {
			return nil, idErr
		}
		ids = append(ids, id)
	}

	var actual *time.Time
	if dto.ActualDelivery != nil {
		t := dto.ActualDelivery.UTC()
		actual = &t
	}

	return shipment.RestoreShipment(
		ids[0], ids[1], ids[2], ids[3], ids[4],
		status,
		dto.CreatedTime.UTC(),
		dto.EstimatedDeliveryTime.UTC(),
		actual,
	)
}

func logFromDomain(e *shipment.StatusLogEntry) StatusLogDTO {
	return StatusLogDTO{
		LogID:      e.ID().Bytes(),
		ShipmentID: e.ShipmentID().Int64(),
		LocationID: kernel.Int64Ptr(e.LocationID()),
		AgentID:    kernel.Int64Ptr(e.AgentID()),
		Timestamp:  e.Timestamp(),
		Status:     e.Status().String(),
		Notes:      e.Notes(),
	}
}

func logToDomain(dto StatusLogDTO) (*shipment.StatusLogEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.LogID[:])
	if err != nil {
		return nil, err
	}
	shipmentID, err := kernel.NewID("shipmentID", dto.ShipmentID)
	if err != nil {
		return nil, err
	}
	status, err := shipment.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	return shipment.RestoreStatusLogEntry(
		id,
		shipmentID,
		kernel.IDFromPtr(dto.LocationID),
		kernel.IDFromPtr(dto.AgentID),
		dto.Timestamp.UTC(),
		status,
		dto.Notes,
	)
}
