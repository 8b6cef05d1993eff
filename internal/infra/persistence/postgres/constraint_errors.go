package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// isCheckConstraintViolation reports a violated CHECK, e.g. the coordinate bounds on products.
func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	// 23514 is check_violation; TranslateError is not enabled on raw statements.
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "check constraint") || strings.Contains(errMsg, "23514")
}

// isInvalidGeometry reports PostGIS rejecting a point, e.g. latitude outside [-90, 90].
func isInvalidGeometry(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "latitude must be between") ||
		strings.Contains(errMsg, "invalid geometry") ||
		strings.Contains(errMsg, "parse error - invalid geometry")
}
