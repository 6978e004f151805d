package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"freight-booking/internal/apperr"
)

// Postgres SQLSTATE codes the store maps onto domain errors.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// IsDuplicate reports a unique constraint violation.
func IsDuplicate(err error) bool {
	return hasCode(err, codeUniqueViolation)
}

// IsNotFound reports an empty single-row result.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// classify wraps constraint violations with the matching apperr sentinel.
// A unique violation on a write means a concurrent writer won (e.g. the
// one-confirmed-shipment-per-driver index); bad references and failed
// checks are invalid input.
func classify(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case IsDuplicate(err):
		return fmt.Errorf("%s: %w: %w", op, apperr.ErrConflict, err)
	case hasCode(err, codeForeignKeyViolation), hasCode(err, codeCheckViolation):
		return fmt.Errorf("%s: %w: %w", op, apperr.ErrInvalid, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func hasCode(err error, code string) bool {
	var pgerr *pgconn.PgError
	return errors.As(err, &pgerr) && pgerr.Code == code
}
