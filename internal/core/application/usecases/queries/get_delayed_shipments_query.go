package queries

import (
	"errors"
	"time"

	"ledger/internal/pkg/errs"
	"ledger/internal/pkg/guard"
)

var ErrGetDelayedShipmentsQueryIsNotConstructed = errors.New(
	"GetDelayedShipmentsQuery must be created via NewGetDelayedShipmentsQuery constructor",
)

// GetDelayedShipmentsQuery finds undelivered shipments whose estimated delivery
// time passed before AsOf.
type GetDelayedShipmentsQuery struct {
	asOf  time.Time
	guard guard.ConstructorGuard
}

func NewGetDelayedShipmentsQuery(asOf time.Time) (GetDelayedShipmentsQuery, error) {
	if asOf.IsZero() {
		return GetDelayedShipmentsQuery{}, errs.NewValueIsRequiredError("asOf")
	}
	return GetDelayedShipmentsQuery{asOf: asOf.UTC(), guard: guard.NewConstructorGuard()}, nil
}

func (q GetDelayedShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetDelayedShipmentsQueryIsNotConstructed)
}

func (q GetDelayedShipmentsQuery) AsOf() time.Time {
	return q.asOf
}

// GetDelayedShipmentsQueryResponse carries the most recently assigned driver,
// if any. DelayHours is the whole number of hours between the estimate and AsOf.
type GetDelayedShipmentsQueryResponse struct {
	ShipmentID        int64
	SenderName        string
	RecipientName     string
	EstimatedDelivery time.Time
	ActualDelivery    *time.Time
	DelayHours        int64
	DriverName        string
	DriverContact     string
}
