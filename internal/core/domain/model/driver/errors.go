package driver

import (
	"errors"
	"fmt"
)

// ErrCapacityExceeded is returned when a driver already carries as many
// undelivered assignments as the capacity limit allows.
var ErrCapacityExceeded = errors.New("driver capacity exceeded")

type CapacityExceededError struct {
	DriverID int64
	Active   int64
	Limit    int
}

func NewCapacityExceededError(driverID int64, active int64, limit int) *CapacityExceededError {
	return &CapacityExceededError{DriverID: driverID, Active: active, Limit: limit}
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("%s: driver %d has %d active assignments, limit is %d",
		ErrCapacityExceeded, e.DriverID, e.Active, e.Limit)
}

func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}
