package queries

import (
	"errors"
	"time"

	"ledger/internal/pkg/errs"
	"ledger/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// VolumeWindowDays is how far back the daily volume report looks.
const VolumeWindowDays = 30

var ErrGetDailyShipmentVolumeQueryIsNotConstructed = errors.New(
	"GetDailyShipmentVolumeQuery must be created via NewGetDailyShipmentVolumeQuery constructor",
)

// GetDailyShipmentVolumeQuery aggregates shipments created in the
// VolumeWindowDays days before AsOf by creation date and origin location.
type GetDailyShipmentVolumeQuery struct {
	asOf  time.Time
	guard guard.ConstructorGuard
}

func NewGetDailyShipmentVolumeQuery(asOf time.Time) (GetDailyShipmentVolumeQuery, error) {
	if asOf.IsZero() {
		return GetDailyShipmentVolumeQuery{}, errs.NewValueIsRequiredError("asOf")
	}
	return GetDailyShipmentVolumeQuery{asOf: asOf.UTC(), guard: guard.NewConstructorGuard()}, nil
}

func (q GetDailyShipmentVolumeQuery) Validate() error {
	return q.guard.Validate(ErrGetDailyShipmentVolumeQueryIsNotConstructed)
}

func (q GetDailyShipmentVolumeQuery) AsOf() time.Time {
	return q.asOf
}

// WindowStart is midnight UTC of the first day covered by the report.
func (q GetDailyShipmentVolumeQuery) WindowStart() time.Time {
	return q.asOf.Truncate(24*time.Hour).AddDate(0, 0, -VolumeWindowDays)
}

// GetDailyShipmentVolumeQueryResponse is one (date, origin) bucket. TotalWeight
// sums the packages currently assigned to the bucket's shipments.
type GetDailyShipmentVolumeQueryResponse struct {
	Date             time.Time
	OriginLocationID int64
	OriginLocation   string
	OriginPostalCode string
	TotalShipments   int64
	Delivered        int64
	InTransit        int64
	Pending          int64
	TotalWeight      decimal.Decimal
}
