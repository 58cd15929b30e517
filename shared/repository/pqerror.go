package repository

import (
	"errors"

	"github.com/lib/pq"

	"busline/shared/constant"
)

// IsFkViolation reports whether err was caused by a Postgres foreign key
// violation, typically a delete on a row that other rows still reference.
func IsFkViolation(err error) bool {
	return pqErrorCode(err) == constant.PqErrorCodeFkViolation
}

// IsUniqueViolation reports whether err was caused by a Postgres unique
// constraint violation.
func IsUniqueViolation(err error) bool {
	return pqErrorCode(err) == constant.PqErrorCodeUniqueViolation
}

func pqErrorCode(err error) string {
	var pqErr *pq.Error

	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}

	return ""
}
