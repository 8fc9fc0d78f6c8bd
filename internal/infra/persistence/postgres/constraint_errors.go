package postgres

import (
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes the repositories translate.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

func pgErrorCode(err error) (code, constraint string, ok bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName, true
	}

	return "", "", false
}

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	code, _, ok := pgErrorCode(err)

	return ok && code == pgUniqueViolation
}

// isUniqueViolationOn reports a unique violation raised by the named index.
func isUniqueViolationOn(err error, constraint string) bool {
	code, name, ok := pgErrorCode(err)

	return ok && code == pgUniqueViolation && name == constraint
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	code, _, ok := pgErrorCode(err)

	return ok && code == pgForeignKeyViolation
}

func isNotNullConstraintViolation(err error) bool {
	code, _, ok := pgErrorCode(err)

	return ok && code == pgNotNullViolation
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}
	code, _, ok := pgErrorCode(err)

	return ok && code == pgCheckViolation
}
