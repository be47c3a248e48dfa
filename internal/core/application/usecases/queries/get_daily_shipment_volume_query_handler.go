package queries

import (
	"context"

	"ledger/internal/adapters/out/postgres/pgerr"
	"ledger/internal/pkg/retry"

	"gorm.io/gorm"
)

type GetDailyShipmentVolumeQueryHandler struct {
	db     *gorm.DB
	policy retry.Policy
}

func NewGetDailyShipmentVolumeQueryHandler(db *gorm.DB, policy retry.Policy) GetDailyShipmentVolumeQueryHandler {
	return GetDailyShipmentVolumeQueryHandler{db: db, policy: policy}
}

// Handle returns the buckets newest date first, busiest origin first within a
// date.
func (h GetDailyShipmentVolumeQueryHandler) Handle(
	ctx context.Context,
	query GetDailyShipmentVolumeQuery,
) ([]GetDailyShipmentVolumeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var result []GetDailyShipmentVolumeQueryResponse
	err := retry.Read(ctx, h.policy, func(ctx context.Context) error {
		var err error
		result, err = h.fetch(ctx, query)
		return err
	})
	return result, err
}

func (h GetDailyShipmentVolumeQueryHandler) fetch(
	ctx context.Context,
	query GetDailyShipmentVolumeQuery,
) ([]GetDailyShipmentVolumeQueryResponse, error) {
	// The package join sits on the open assignment only, so a moved package is
	// weighed once, against the shipment that holds it now. Counts are DISTINCT
	// because a shipment with several packages yields several joined rows.
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			(s.created_time AT TIME ZONE 'UTC')::date AS shipment_date,
			l.location_id,
			l.name,
			l.postal_code,
			COUNT(DISTINCT s.shipment_id) AS total_shipments,
			COUNT(DISTINCT s.shipment_id) FILTER (WHERE s.status = 'delivered'),
			COUNT(DISTINCT s.shipment_id) FILTER (WHERE s.status = 'in_transit'),
			COUNT(DISTINCT s.shipment_id) FILTER (WHERE s.status = 'pending'),
			COALESCE(SUM(p.weight), 0)
		FROM shipments s
		JOIN location l ON l.location_id = s.origin_id
		LEFT JOIN package_shipment_assignment psa
			ON psa.shipment_id = s.shipment_id AND psa.removed_at IS NULL
		LEFT JOIN package p ON p.package_id = psa.package_id
		WHERE s.created_time >= ? AND s.created_time <= ?
		GROUP BY shipment_date, l.location_id, l.name, l.postal_code
		ORDER BY shipment_date DESC, total_shipments DESC, l.location_id
	`, query.WindowStart(), query.AsOf()).Rows()
	if err != nil {
		return nil, pgerr.Translate("daily shipment volume", err)
	}
	defer rows.Close()

	buckets := make([]GetDailyShipmentVolumeQueryResponse, 0)
	for rows.Next() {
		var r GetDailyShipmentVolumeQueryResponse
		if err = rows.Scan(
			&r.Date,
			&r.OriginLocationID,
			&r.OriginLocation,
			&r.OriginPostalCode,
			&r.TotalShipments,
			&r.Delivered,
			&r.InTransit,
			&r.Pending,
			&r.TotalWeight,
		); err != nil {
			return nil, pgerr.Translate("daily shipment volume", err)
		}

		r.Date = r.Date.UTC()
		buckets = append(buckets, r)
	}

	if err = rows.Err(); err != nil {
		return nil, pgerr.Translate("daily shipment volume", err)
	}

	return buckets, nil
}
