package gormrepo

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"aquaria-partner-portal/internal/domain/apperr"
)

// translate maps gorm and driver errors onto the apperr taxonomy.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), isUniqueViolation(err):
		return apperr.ErrDuplicateCode
	}
	return fmt.Errorf("%w: %v", apperr.ErrStoreUnavailable, err)
}

// isUniqueViolation catches drivers opened without TranslateError.
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || // mysql 1062
		strings.Contains(msg, "duplicate key value") || // postgres 23505
		strings.Contains(msg, "UNIQUE constraint failed") // sqlite
}
