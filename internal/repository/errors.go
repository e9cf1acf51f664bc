package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"garmentflow/pkg/tx"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	PgErrForeignKeyViolation = "23503"
	PgErrUniqueViolation     = "23505"
	PgErrCheckViolation      = "23514"
)

func IsPgErrorWithCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

// Unexpected оборачивает ошибку, для которой у репозитория нет своего sentinel.
// Недоступность базы помечается tx.ErrUnavailable, чтобы ручки отдавали 503.
func Unexpected(op string, err error) error {
	if tx.IsConnectionError(err) {
		return fmt.Errorf("%w: %s: %w", tx.ErrUnavailable, op, err)
	}
	return fmt.Errorf("unexpected %s error: %w", op, err)
}
