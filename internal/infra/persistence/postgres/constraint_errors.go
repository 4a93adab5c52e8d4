package postgres

import (
	"strings"

	"agenda/internal/domain/repository"
	"agenda/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes
const (
	pgUniqueViolation  = "23505"
	pgNotNullViolation = "23502"
)

// translateDuplicate maps a unique violation to the domain sentinel for the
// offending key. Any other error is returned as is.
func translateDuplicate(err error) error {
	if err == nil {
		return nil
	}

	if pgErr, ok := errors.AsType[*pgconn.PgError](err); ok && pgErr.Code == pgUniqueViolation {
		if strings.Contains(pgErr.ConstraintName, "email") {
			return errors.Join(repository.ErrDuplicateEmail, err)
		}

		return errors.Join(repository.ErrDuplicateTaxID, err)
	}

	// With TranslateError enabled the driver detail is gone; fall back to the message.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		if strings.Contains(strings.ToLower(err.Error()), "email") {
			return errors.Join(repository.ErrDuplicateEmail, err)
		}

		return errors.Join(repository.ErrDuplicateTaxID, err)
	}

	return err
}

func isNotNullConstraintViolation(err error) bool {
	if pgErr, ok := errors.AsType[*pgconn.PgError](err); ok {
		return pgErr.Code == pgNotNullViolation
	}

	return false
}

func isUniqueConstraintViolation(err error) bool {
	if pgErr, ok := errors.AsType[*pgconn.PgError](err); ok {
		return pgErr.Code == pgUniqueViolation
	}

	return errors.Is(err, gorm.ErrDuplicatedKey)
}
