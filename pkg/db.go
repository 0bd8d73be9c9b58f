package pkg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the storage layer maps to domain errors.
// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	PgUniqueViolation = "23505"
	PgCheckViolation  = "23514"
)

// PgErrorCode returns the SQLSTATE of the postgres error wrapped in err, or
// an empty string when err did not come from the server.
func PgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsUniqueViolationError reports an insert that hit a UNIQUE constraint,
// e.g. a set logged twice.
func IsUniqueViolationError(err error) bool {
	return PgErrorCode(err) == PgUniqueViolation
}

// IsCheckViolationError reports a row rejected by a CHECK constraint.
func IsCheckViolationError(err error) bool {
	return PgErrorCode(err) == PgCheckViolation
}
