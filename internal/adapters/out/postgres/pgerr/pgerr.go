// Package pgerr translates PostgreSQL failures into the error kinds of
// internal/pkg/errs so callers never inspect SQLSTATE codes.
package pgerr

import (
	"errors"

	"fulfillment/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeUniqueViolation      = "23505"
)

// Map converts err into a domain error where the SQLSTATE has a domain
// meaning. uniqueField names the parameter reported for a unique violation;
// entity and id describe the row for a serialization conflict. Other errors
// are returned unchanged.
func Map(err error, entity string, id any, uniqueField string) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case codeSerializationFailure, codeDeadlockDetected:
		return errs.NewConflictErrorWithCause(entity, id, err)
	case codeUniqueViolation:
		if uniqueField == "" {
			return errs.NewConflictErrorWithCause(entity, id, err)
		}
		return errs.NewValueIsInvalidErrorWithCause(uniqueField, errors.New("already exists"))
	default:
		return err
	}
}
