package postgres

import (
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes.
const (
	pgUniqueViolation  = "23505"
	pgNotNullViolation = "23502"
)

// isUniqueConstraintViolation matches both GORM's translated error and the raw driver error,
// since translation depends on how the connection was opened.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return hasSQLState(err, pgUniqueViolation)
}

func isNotNullConstraintViolation(err error) bool {
	return hasSQLState(err, pgNotNullViolation)
}

func hasSQLState(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}

	return false
}
