package queries

import (
	"context"

	"ledger/internal/adapters/out/postgres/pgerr"
	"ledger/internal/pkg/retry"

	"gorm.io/gorm"
)

type GetPendingShipmentsForDriverQueryHandler struct {
	db     *gorm.DB
	policy retry.Policy
}

func NewGetPendingShipmentsForDriverQueryHandler(
	db *gorm.DB,
	policy retry.Policy,
) GetPendingShipmentsForDriverQueryHandler {
	return GetPendingShipmentsForDriverQueryHandler{db: db, policy: policy}
}

// Handle returns shipments in pending status whose assignment to the driver is
// not yet delivered, oldest assignment first.
func (h GetPendingShipmentsForDriverQueryHandler) Handle(
	ctx context.Context,
	query GetPendingShipmentsForDriverQuery,
) ([]GetPendingShipmentsForDriverQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var result []GetPendingShipmentsForDriverQueryResponse
	err := retry.Read(ctx, h.policy, func(ctx context.Context) error {
		var err error
		result, err = h.fetch(ctx, query)
		return err
	})
	return result, err
}

func (h GetPendingShipmentsForDriverQueryHandler) fetch(
	ctx context.Context,
	query GetPendingShipmentsForDriverQuery,
) ([]GetPendingShipmentsForDriverQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.shipment_id,
			c1.name,
			c2.name,
			l1.name,
			l2.name,
			s.estimated_delivery_time,
			dsa.assigned_at,
			dsa.estimated_pickup_time
		FROM driver_shipment_assignment dsa
		JOIN shipments s ON s.shipment_id = dsa.shipment_id
		JOIN customer c1 ON c1.customer_id = s.sender_id
		JOIN customer c2 ON c2.customer_id = s.recipient_id
		JOIN location l1 ON l1.location_id = s.origin_id
		JOIN location l2 ON l2.location_id = s.destination_id
		WHERE dsa.driver_id = ?
		  AND s.status = 'pending'
		  AND dsa.delivered = FALSE
		ORDER BY dsa.assigned_at, s.shipment_id
	`, query.DriverID().Int64()).Rows()
	if err != nil {
		return nil, pgerr.Translate("pending shipments for driver", err)
	}
	defer rows.Close()

	shipments := make([]GetPendingShipmentsForDriverQueryResponse, 0)
	for rows.Next() {
		var r GetPendingShipmentsForDriverQueryResponse
		if err = rows.Scan(
			&r.ShipmentID,
			&r.SenderName,
			&r.RecipientName,
			&r.OriginLocation,
			&r.DestinationLocation,
			&r.EstimatedDelivery,
			&r.AssignedAt,
			&r.EstimatedPickup,
		); err != nil {
			return nil, pgerr.Translate("pending shipments for driver", err)
		}

		r.EstimatedDelivery = r.EstimatedDelivery.UTC()
		r.AssignedAt = r.AssignedAt.UTC()
		r.EstimatedPickup = r.EstimatedPickup.UTC()
		shipments = append(shipments, r)
	}

	if err = rows.Err(); err != nil {
		return nil, pgerr.Translate("pending shipments for driver", err)
	}

	return shipments, nil
}
