package errs_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"ledger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("shipmentID", int64(1001))

		assert.Equal(t, "shipmentID", err.ParamName)
		assert.Equal(t, int64(1001), err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 1001", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("record not found")
		err := errs.NewObjectNotFoundErrorWithCause("driverID", 7, cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: driverID, ID is: 7 (cause: record not found)",
			err.Error())
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("unknown status lost")
		err := errs.NewValueIsInvalidErrorWithCause("status", cause)

		assert.Equal(t, "value is invalid: status (cause: unknown status lost)", err.Error())
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("weight", "1000000.00", "0.01", "999999.99")

		assert.Equal(t, "weight", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t,
			"value is out of range: weight is 1000000.00, min value is 0.01, max value is 999999.99",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("negative limit")
		err := errs.NewValueIsOutOfRangeErrorWithCause("maxActiveAssignments", -1, 0, 1000, cause)

		assert.Equal(t,
			"value is out of range: maxActiveAssignments is -1, min value is 0, max value is 1000 (cause: negative limit)",
			err.Error())
	})

	t.Run("newlines_are_flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("notes", "picked\nup", 0, 10)

		assert.Contains(t, err.Error(), "picked up")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("description")

	assert.Equal(t, "value is required: description", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())

	withCause := errs.NewValueIsRequiredErrorWithCause("description", errors.New("blank"))
	assert.Equal(t, "value is required: description (cause: blank)", withCause.Error())
}

func TestConstraintViolationError(t *testing.T) {
	t.Run("with_detail", func(t *testing.T) {
		err := errs.NewConstraintViolationError("shipments_pkey", "23505", "Key (shipment_id)=(1001) already exists.")

		assert.Equal(t,
			"constraint violation: shipments_pkey [23505]: Key (shipment_id)=(1001) already exists.",
			err.Error())
		assert.ErrorIs(t, err, errs.ErrConstraintViolation)
	})

	t.Run("with_cause", func(t *testing.T) {
		cause := errors.New("ERROR: insert or update violates foreign key")
		err := errs.NewConstraintViolationErrorWithCause("shipments_sender_id_fkey", "23503", "", cause)

		assert.Equal(t,
			"constraint violation: shipments_sender_id_fkey [23503] (cause: ERROR: insert or update violates foreign key)",
			err.Error())
		assert.Equal(t, errs.ErrConstraintViolation, err.Unwrap())
	})
}

func TestPreconditionFailedError(t *testing.T) {
	err := errs.NewPreconditionFailedError("package 2001 is not assigned to shipment 1001")

	assert.Equal(t, "precondition failed: package 2001 is not assigned to shipment 1001", err.Error())
	assert.ErrorIs(t, fmt.Errorf("move package: %w", err), errs.ErrPreconditionFailed)
}

func TestTransientAndTimeoutErrors(t *testing.T) {
	t.Run("transient_matches_sentinel_and_cause", func(t *testing.T) {
		cause := errors.New("deadlock detected")
		err := errs.NewTransientError("assign shipment", cause)

		assert.ErrorIs(t, err, errs.ErrTransient)
		assert.ErrorIs(t, err, cause)
		assert.True(t, errs.IsRetryable(err))
		assert.Equal(t, "transient failure: assign shipment (cause: deadlock detected)", err.Error())
	})

	t.Run("timeout_matches_context_deadline", func(t *testing.T) {
		err := errs.NewTimeoutError("delayed shipments", context.DeadlineExceeded)

		assert.ErrorIs(t, err, errs.ErrTimeout)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.True(t, errs.IsRetryable(err))
	})

	t.Run("constraint_is_not_retryable", func(t *testing.T) {
		err := errs.NewConstraintViolationError("packages_pkey", "23505", "")

		assert.False(t, errs.IsRetryable(err))
	})
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "constraint violation", errs.ErrConstraintViolation.Error())
	assert.Equal(t, "precondition failed", errs.ErrPreconditionFailed.Error())
	assert.Equal(t, "transient failure", errs.ErrTransient.Error())
	assert.Equal(t, "operation timed out", errs.ErrTimeout.Error())
}
