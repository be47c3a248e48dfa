package queries

import (
	"context"
	"database/sql"
	"time"

	"ledger/internal/adapters/out/postgres/pgerr"
	"ledger/internal/core/domain/model/shipment"
	"ledger/internal/pkg/retry"

	"gorm.io/gorm"
)

type GetShipmentStatusLogQueryHandler struct {
	db     *gorm.DB
	policy retry.Policy
}

func NewGetShipmentStatusLogQueryHandler(db *gorm.DB, policy retry.Policy) GetShipmentStatusLogQueryHandler {
	return GetShipmentStatusLogQueryHandler{db: db, policy: policy}
}

// Handle returns the log newest first. An unknown shipment yields no rows.
func (h GetShipmentStatusLogQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentStatusLogQuery,
) ([]GetShipmentStatusLogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var result []GetShipmentStatusLogQueryResponse
	err := retry.Read(ctx, h.policy, func(ctx context.Context) error {
		var err error
		result, err = h.fetch(ctx, query)
		return err
	})
	return result, err
}

func (h GetShipmentStatusLogQueryHandler) fetch(
	ctx context.Context,
	query GetShipmentStatusLogQuery,
) ([]GetShipmentStatusLogQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.shipment_id,
			s.status,
			s.estimated_delivery_time,
			s.actual_delivery,
			sl.status,
			sl."timestamp",
			l.name,
			l.postal_code,
			a.name,
			sl.notes
		FROM shipments s
		LEFT JOIN status_logs sl ON sl.shipment_id = s.shipment_id
		LEFT JOIN location l ON l.location_id = sl.location_id
		LEFT JOIN agent a ON a.agent_id = sl.agent_id
		WHERE s.shipment_id = ?
		ORDER BY sl."timestamp" DESC NULLS LAST
	`, query.ShipmentID().Int64()).Rows()
	if err != nil {
		return nil, pgerr.Translate("shipment status log", err)
	}
	defer rows.Close()

	entries := make([]GetShipmentStatusLogQueryResponse, 0)
	for rows.Next() {
		var (
			r              GetShipmentStatusLogQueryResponse
			currentStatus  string
			actualDelivery sql.NullTime
			logStatus      sql.NullString
			logTimestamp   sql.NullTime
			locationName   sql.NullString
			postalCode     sql.NullString
			agentName      sql.NullString
			notes          sql.NullString
		)

		if err = rows.Scan(
			&r.ShipmentID,
			&currentStatus,
			&r.EstimatedDelivery,
			&actualDelivery,
			&logStatus,
			&logTimestamp,
			&locationName,
			&postalCode,
			&agentName,
			&notes,
		); err != nil {
			return nil, pgerr.Translate("shipment status log", err)
		}

		r.CurrentStatus = shipment.Status(currentStatus)
		r.EstimatedDelivery = r.EstimatedDelivery.UTC()
		r.ActualDelivery = nullTime(actualDelivery)
		r.LogStatus = shipment.Status(logStatus.String)
		r.LogTimestamp = nullTime(logTimestamp)
		r.LocationName = locationName.String
		r.PostalCode = postalCode.String
		r.AgentName = agentName.String
		r.Notes = notes.String
		entries = append(entries, r)
	}

	if err = rows.Err(); err != nil {
		return nil, pgerr.Translate("shipment status log", err)
	}

	return entries, nil
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC()
	return &v
}
