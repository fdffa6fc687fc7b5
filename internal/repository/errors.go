package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	PgErrUniqueViolation      = "23505"
	PgErrForeignKeyViolation  = "23503"
	PgErrSerializationFailure = "40001"
)

func IsPgErrorWithCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

// IsRetryableTxError reports whether the transaction lost a serialization
// race and the whole operation can be retried by the caller.
func IsRetryableTxError(err error) bool {
	return IsPgErrorWithCode(err, PgErrSerializationFailure)
}
