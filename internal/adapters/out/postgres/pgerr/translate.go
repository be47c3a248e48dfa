// Package pgerr maps PostgreSQL driver errors onto the errs taxonomy so that
// callers can decide between reporting, retrying and giving up without
// looking at SQLSTATE codes themselves.
package pgerr

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"

	"ledger/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the ledger reacts to.
const (
	NotNullViolation     = "23502"
	ForeignKeyViolation  = "23503"
	UniqueViolation      = "23505"
	CheckViolation       = "23514"
	SerializationFailure = "40001"
	DeadlockDetected     = "40P01"
	QueryCanceled        = "57014"

	CharacterNotInRepertoire = "22021"

	dataExceptionClass       = "22"
	integrityConstraintClass = "23"
	connectionExceptionClass = "08"
)

// Translate classifies err for operation op:
//   - class 22 (bad data such as NUL bytes) becomes an errs.ValueIsInvalidError
//   - class 23 becomes an errs.ConstraintViolationError
//   - serialization failures, deadlocks and connection exceptions become an
//     errs.TransientError
//   - statement timeouts and expired contexts become an errs.TimeoutError
//
// Anything else is wrapped with op and returned unchanged in kind.
func Translate(op string, err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case strings.HasPrefix(pgErr.Code, dataExceptionClass):
			param := pgErr.ColumnName
			if param == "" {
				param = op
			}
			return errs.NewValueIsInvalidErrorWithCause(param, err)
		case strings.HasPrefix(pgErr.Code, integrityConstraintClass):
			return errs.NewConstraintViolationErrorWithCause(pgErr.ConstraintName, pgErr.Code, pgErr.Detail, err)
		case pgErr.Code == SerializationFailure,
			pgErr.Code == DeadlockDetected,
			strings.HasPrefix(pgErr.Code, connectionExceptionClass):
			return errs.NewTransientError(op, err)
		case pgErr.Code == QueryCanceled:
			return errs.NewTimeoutError(op, err)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded), pgconn.Timeout(err):
		return errs.NewTimeoutError(op, err)
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("%s: %w", op, err)
	case errors.Is(err, driver.ErrBadConn), pgconn.SafeToRetry(err):
		return errs.NewTransientError(op, err)
	}

	return fmt.Errorf("%s: %w", op, err)
}
