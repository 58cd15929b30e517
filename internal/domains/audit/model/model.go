package model

import (
	"busline/shared/model"

	"github.com/jmoiron/sqlx/types"
)

const (
	TableName  = "audit_master"
	EntityName = "audit"

	FieldID        = "id"
	FieldTable     = "table_name"
	FieldDataID    = "data_id"
	FieldDeletedBy = "deleted_by"
)

// Audit is an insert-only archive row. Payload holds the deleted record as
// it existed at deletion time.
type Audit struct {
	ID        string         `db:"id"`
	Table     string         `db:"table_name"`
	DataID    string         `db:"data_id"`
	Payload   types.JSONText `db:"payload"`
	DeletedBy string         `db:"deleted_by"`
	model.Metadata
}
