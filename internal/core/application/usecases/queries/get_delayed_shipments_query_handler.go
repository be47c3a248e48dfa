package queries

import (
	"context"
	"database/sql"

	"ledger/internal/adapters/out/postgres/pgerr"
	"ledger/internal/pkg/retry"

	"gorm.io/gorm"
)

type GetDelayedShipmentsQueryHandler struct {
	db     *gorm.DB
	policy retry.Policy
}

func NewGetDelayedShipmentsQueryHandler(db *gorm.DB, policy retry.Policy) GetDelayedShipmentsQueryHandler {
	return GetDelayedShipmentsQueryHandler{db: db, policy: policy}
}

// Handle returns the delayed shipments, longest delay first.
func (h GetDelayedShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetDelayedShipmentsQuery,
) ([]GetDelayedShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var result []GetDelayedShipmentsQueryResponse
	err := retry.Read(ctx, h.policy, func(ctx context.Context) error {
		var err error
		result, err = h.fetch(ctx, query)
		return err
	})
	return result, err
}

func (h GetDelayedShipmentsQueryHandler) fetch(
	ctx context.Context,
	query GetDelayedShipmentsQuery,
) ([]GetDelayedShipmentsQueryResponse, error) {
	asOf := query.AsOf()

	// A shipment reassigned several times reports only its latest driver.
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.shipment_id,
			c1.name,
			c2.name,
			s.estimated_delivery_time,
			s.actual_delivery,
			FLOOR(EXTRACT(EPOCH FROM (CAST(? AS timestamptz) - s.estimated_delivery_time)) / 3600)::bigint AS delay_hours,
			d.name,
			d.contact
		FROM shipments s
		JOIN customer c1 ON c1.customer_id = s.sender_id
		JOIN customer c2 ON c2.customer_id = s.recipient_id
		LEFT JOIN LATERAL (
			SELECT driver_id
			FROM driver_shipment_assignment
			WHERE shipment_id = s.shipment_id
			ORDER BY assigned_at DESC
			LIMIT 1
		) dsa ON TRUE
		LEFT JOIN driver d ON d.driver_id = dsa.driver_id
		WHERE s.estimated_delivery_time < ?
		  AND s.status IN ('pending', 'in_transit')
		  AND (s.actual_delivery IS NULL OR s.actual_delivery > s.estimated_delivery_time)
		ORDER BY delay_hours DESC, s.shipment_id
	`, asOf, asOf).Rows()
	if err != nil {
		return nil, pgerr.Translate("delayed shipments", err)
	}
	defer rows.Close()

	delayed := make([]GetDelayedShipmentsQueryResponse, 0)
	for rows.Next() {
		var (
			r              GetDelayedShipmentsQueryResponse
			actualDelivery sql.NullTime
			driverName     sql.NullString
			driverContact  sql.NullString
		)

		if err = rows.Scan(
			&r.ShipmentID,
			&r.SenderName,
			&r.RecipientName,
			&r.EstimatedDelivery,
			&actualDelivery,
			&r.DelayHours,
			&driverName,
			&driverContact,
		); err != nil {
			return nil, pgerr.Translate("delayed shipments", err)
		}

		r.EstimatedDelivery = r.EstimatedDelivery.UTC()
		r.ActualDelivery = nullTime(actualDelivery)
		r.DriverName = driverName.String
		r.DriverContact = driverContact.String
		delayed = append(delayed, r)
	}

	if err = rows.Err(); err != nil {
		return nil, pgerr.Translate("delayed shipments", err)
	}

	return delayed, nil
}
