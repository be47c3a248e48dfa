package shipment

import (
	"fmt"

	"ledger/internal/pkg/errs"
)

// Status is the lifecycle state of a shipment as stored in shipments.status.
type Status string

const (
	Pending   Status = "pending"
	InTransit Status = "in_transit"
	Delivered Status = "delivered"
	Returned  Status = "returned"
)

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, InTransit, Delivered, Returned}
}

// ParseStatus converts a stored or client supplied value into a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

func (s Status) Validate() error {
	switch s {
	case Pending, InTransit, Delivered, Returned:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid shipment status", string(s)))
	}
}

func (s Status) String() string {
	return string(s)
}

// IsOpen reports whether the shipment is still on its way, which is what the
// delayed shipments report considers.
func (s Status) IsOpen() bool {
	return s == Pending || s == InTransit
}
