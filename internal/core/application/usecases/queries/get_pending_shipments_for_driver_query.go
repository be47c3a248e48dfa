package queries

import (
	"errors"
	"time"

	"ledger/internal/core/domain/model/kernel"
	"ledger/internal/pkg/guard"
)

var ErrGetPendingShipmentsForDriverQueryIsNotConstructed = errors.New(
	"GetPendingShipmentsForDriverQuery must be created via NewGetPendingShipmentsForDriverQuery constructor",
)

// GetPendingShipmentsForDriverQuery lists the pending shipments a driver still
// has to deliver.
type GetPendingShipmentsForDriverQuery struct {
	driverID kernel.ID
	guard    guard.ConstructorGuard
}

func NewGetPendingShipmentsForDriverQuery(driverID int64) (GetPendingShipmentsForDriverQuery, error) {
	id, err := kernel.NewID("driverID", driverID)
	if err != nil {
		return GetPendingShipmentsForDriverQuery{}, err
	}
	return GetPendingShipmentsForDriverQuery{driverID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPendingShipmentsForDriverQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingShipmentsForDriverQueryIsNotConstructed)
}

func (q GetPendingShipmentsForDriverQuery) DriverID() kernel.ID {
	return q.driverID
}

type GetPendingShipmentsForDriverQueryResponse struct {
	ShipmentID          int64
	SenderName          string
	RecipientName       string
	OriginLocation      string
	DestinationLocation string
	EstimatedDelivery   time.Time
	AssignedAt          time.Time
	EstimatedPickup     time.Time
}
