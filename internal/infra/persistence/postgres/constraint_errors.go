package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	if err == nil {
		return false
	}

	// Check for GORM's duplicate key error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// Check error message for PostgreSQL-specific unique constraint violation patterns
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "23505") // PostgreSQL unique_violation error code
}

// isUniqueViolationOn reports whether err is a unique violation on the named
// constraint or index. Postgres includes the constraint name in the message,
// which lets callers distinguish which uniqueness rule lost the race.
func isUniqueViolationOn(err error, constraintName string) bool {
	if !isUniqueConstraintViolation(err) {
		return false
	}

	return strings.Contains(strings.ToLower(err.Error()), strings.ToLower(constraintName))
}
