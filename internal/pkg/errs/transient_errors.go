package errs

import (
	"errors"
	"fmt"
)

var (
	ErrTransient = errors.New("transient failure")
	ErrTimeout   = errors.New("operation timed out")
)

// TransientError wraps a failure that left nothing committed and may succeed on
// a later attempt: serialization failures, deadlocks, lost connections.
type TransientError struct {
	Op    string
	Cause error
}

func NewTransientError(op string, cause error) *TransientError {
	return &TransientError{Op: op, Cause: cause}
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("%s: %s (cause: %v)", ErrTransient, e.Op, e.Cause)
}

// Unwrap exposes both the sentinel and the cause, so errors.Is matches either.
func (e *TransientError) Unwrap() []error {
	return []error{ErrTransient, e.Cause}
}

// TimeoutError wraps a statement cancelled by its deadline.
type TimeoutError struct {
	Op    string
	Cause error
}

func NewTimeoutError(op string, cause error) *TimeoutError {
	return &TimeoutError{Op: op, Cause: cause}
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s: %s (cause: %v)", ErrTimeout, e.Op, e.Cause)
}

func (e *TimeoutError) Unwrap() []error {
	return []error{ErrTimeout, e.Cause}
}

// IsRetryable reports whether a read may be retried.
// Writes must only retry ErrTransient: a timed-out write may have reached the server.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrTransient) || errors.Is(err, ErrTimeout)
}
