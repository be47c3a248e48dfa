package http

import (
	"errors"
	"net/http"

	"ledger/internal/core/domain/model/driver"
	"ledger/internal/pkg/errs"
)

// Error kinds reported in the "error" field and as the metrics outcome.
const (
	kindInvalidRequest      = "invalid_request"
	kindNotFound            = "not_found"
	kindConstraintViolation = "constraint_violation"
	kindCapacityExceeded    = "capacity_exceeded"
	kindPreconditionFailed  = "precondition_failed"
	kindUnavailable         = "unavailable"
	kindInternal            = "internal"
)

// classify maps a use case error to an HTTP status and an error kind. Capacity
// is checked before constraint violations so the two stay distinguishable.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, kindInvalidRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, kindNotFound
	case errors.Is(err, driver.ErrCapacityExceeded):
		return http.StatusConflict, kindCapacityExceeded
	case errors.Is(err, errs.ErrConstraintViolation):
		return http.StatusConflict, kindConstraintViolation
	case errors.Is(err, errs.ErrPreconditionFailed):
		return http.StatusConflict, kindPreconditionFailed
	case errors.Is(err, errs.ErrTransient), errors.Is(err, errs.ErrTimeout):
		return http.StatusServiceUnavailable, kindUnavailable
	default:
		return http.StatusInternalServerError, kindInternal
	}
}
