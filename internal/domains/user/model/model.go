package model

import (
	"busline/shared/model"
	"time"
)

const (
	TableName  = "operators"
	EntityName = "operator"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldFullName  = "full_name"
	FieldRole      = "role"
	FieldLastLogin = "last_login"
	FieldActive    = "active"
)

// Operator is a back-office account. Role gates endpoints via the embedded
// permission table.
type Operator struct {
	ID        string     `db:"id"`
	Email     string     `db:"email"`
	Password  string     `db:"password"`
	FullName  string     `db:"full_name"`
	Role      string     `db:"role"`
	LastLogin *time.Time `db:"last_login"`
	Active    bool       `db:"active"`
	model.Metadata
}
