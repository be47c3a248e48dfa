package queries

import (
	"errors"
	"time"

	"ledger/internal/core/domain/model/kernel"
	"ledger/internal/core/domain/model/shipment"
	"ledger/internal/pkg/guard"
)

var ErrGetShipmentStatusLogQueryIsNotConstructed = errors.New(
	"GetShipmentStatusLogQuery must be created via NewGetShipmentStatusLogQuery constructor",
)

// GetShipmentStatusLogQuery returns the status history of one shipment.
//
// Example:
//
//	query, _ := NewGetShipmentStatusLogQuery(1001)
//	rows, err := handler.Handle(ctx, query)
//	for _, r := range rows {
//	    fmt.Printf("%s %s at %s by %s\n", r.LogTimestamp, r.LogStatus, r.LocationName, r.AgentName)
//	}
type GetShipmentStatusLogQuery struct {
	shipmentID kernel.ID
	guard      guard.ConstructorGuard
}

func NewGetShipmentStatusLogQuery(shipmentID int64) (GetShipmentStatusLogQuery, error) {
	id, err := kernel.NewID("shipmentID", shipmentID)
	if err != nil {
		return GetShipmentStatusLogQuery{}, err
	}
	return GetShipmentStatusLogQuery{shipmentID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetShipmentStatusLogQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentStatusLogQueryIsNotConstructed)
}

func (q GetShipmentStatusLogQuery) ShipmentID() kernel.ID {
	return q.shipmentID
}

// GetShipmentStatusLogQueryResponse is one status log entry joined with the
// shipment's current state. For a shipment without log entries the log fields
// are empty and LogTimestamp is nil.
type GetShipmentStatusLogQueryResponse struct {
	ShipmentID        int64
	CurrentStatus     shipment.Status
	EstimatedDelivery time.Time
	ActualDelivery    *time.Time
	LogStatus         shipment.Status
	LogTimestamp      *time.Time
	LocationName      string
	PostalCode        string
	AgentName         string
	Notes             string
}
