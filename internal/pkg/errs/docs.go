// Package errs provides standardized error types for the shipment ledger.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - ConstraintViolationError: For when the store rejects a write (duplicate key,
//     missing referenced row, check constraint)
//   - PreconditionFailedError: For when the stored state does not allow an operation
//   - TransientError and TimeoutError: For failures that may succeed when retried
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify failures with errors.Is against the sentinels:
//
//	switch {
//	case errors.Is(err, errs.ErrConstraintViolation):
//	    // duplicate id, unknown sender, ...
//	case errors.Is(err, errs.ErrPreconditionFailed):
//	    // package was not attached to the source shipment
//	case errs.IsRetryable(err):
//	    // try again later
//	}
package errs
