package errs

import (
	"errors"
	"fmt"
)

var (
	ErrObjectNotFound      = errors.New("object not found")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrPreconditionFailed  = errors.New("precondition failed")
)

// ObjectNotFoundError reports a lookup by identifier that matched nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %v)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %v", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ConstraintViolationError is returned when the store rejects a write because it
// would break an integrity constraint: a duplicate key, a reference to a missing
// row, a failed CHECK or a NOT NULL column left empty.
//
// Code carries the SQLSTATE reported by the database, Constraint the name of the
// violated constraint when the database reports one.
type ConstraintViolationError struct {
	Constraint string
	Code       string
	Detail     string
	Cause      error
}

func NewConstraintViolationError(constraint, code, detail string) *ConstraintViolationError {
	return &ConstraintViolationError{Constraint: constraint, Code: code, Detail: detail}
}

func NewConstraintViolationErrorWithCause(constraint, code, detail string, cause error) *ConstraintViolationError {
	return &ConstraintViolationError{Constraint: constraint, Code: code, Detail: detail, Cause: cause}
}

func (e *ConstraintViolationError) Error() string {
	msg := fmt.Sprintf("%s: %s [%s]", ErrConstraintViolation, e.Constraint, e.Code)
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, sanitize(e.Detail))
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ConstraintViolationError) Unwrap() error {
	return ErrConstraintViolation
}

// PreconditionFailedError reports that the stored state does not satisfy what an
// operation requires, for example moving a package out of a shipment it is not
// currently assigned to.
type PreconditionFailedError struct {
	Condition string
	Cause     error
}

func NewPreconditionFailedError(condition string) *PreconditionFailedError {
	return &PreconditionFailedError{Condition: condition}
}

func NewPreconditionFailedErrorWithCause(condition string, cause error) *PreconditionFailedError {
	return &PreconditionFailedError{Condition: condition, Cause: cause}
}

func (e *PreconditionFailedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrPreconditionFailed, e.Condition, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrPreconditionFailed, e.Condition)
}

func (e *PreconditionFailedError) Unwrap() error {
	return ErrPreconditionFailed
}
