package parcel

import (
	"fmt"

	"ledger/internal/pkg/errs"
)

// RemovalReason explains why a package assignment was closed.
type RemovalReason string

const (
	RemovalReassigned RemovalReason = "reassigned"
	RemovalDamaged    RemovalReason = "damaged"
	RemovalLost       RemovalReason = "lost"
	RemovalReturned   RemovalReason = "returned"
	RemovalOther      RemovalReason = "other"
)

func (r RemovalReason) Validate() error {
	switch r {
	case RemovalReassigned, RemovalDamaged, RemovalLost, RemovalReturned, RemovalOther:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("removalReason", fmt.Errorf("%q is not a valid removal reason", string(r)))
	}
}

func (r RemovalReason) String() string { return string(r) }

// MovementReason explains why a package moved between shipments.
type MovementReason string

const (
	MovementReassignment    MovementReason = "reassignment"
	MovementConsolidation   MovementReason = "consolidation"
	MovementSplitShipment   MovementReason = "split_shipment"
	MovementDamage          MovementReason = "damage"
	MovementCustomerRequest MovementReason = "customer_request"
	MovementOther           MovementReason = "other"
)

func MovementReasons() []MovementReason {
	return []MovementReason{
		MovementReassignment,
		MovementConsolidation,
		MovementSplitShipment,
		MovementDamage,
		MovementCustomerRequest,
		MovementOther,
	}
}

func ParseMovementReason(s string) (MovementReason, error) {
	r := MovementReason(s)
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

func (r MovementReason) Validate() error {
	for _, valid := range MovementReasons() {
		if r == valid {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("movementReason", fmt.Errorf("%q is not a valid movement reason", string(r)))
}

func (r MovementReason) String() string { return string(r) }

// RemovalReason maps the movement vocabulary onto the removal vocabulary used
// when the source assignment is closed.
func (r MovementReason) RemovalReason() RemovalReason {
	switch r {
	case MovementDamage:
		return RemovalDamaged
	case MovementOther:
		return RemovalOther
	default:
		return RemovalReassigned
	}
}
