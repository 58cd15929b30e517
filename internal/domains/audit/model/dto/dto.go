package dto

import (
	"busline/internal/domains/audit/model"
	"busline/shared"
	"busline/shared/constant"
	gModel "busline/shared/model"
	"busline/shared/timezone"
	"encoding/json"

	"github.com/google/uuid"
)

type AuditResponse struct {
	ID        string          `json:"id"`
	Table     string          `json:"table_name"`
	DataID    string          `json:"data_id"`
	Payload   json.RawMessage `json:"payload"`
	DeletedBy string          `json:"deleted_by"`
	DeletedAt string          `json:"deleted_at"`
}

func (r *AuditResponse) FromModel(model model.Audit) {
	r.ID = model.ID
	r.Table = model.Table
	r.DataID = model.DataID
	r.Payload = json.RawMessage(model.Payload)
	r.DeletedBy = model.DeletedBy
	r.DeletedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
}

type GetAuditsResponse struct {
	Audits    []AuditResponse `json:"audits"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetAuditsResponse) FromModels(models []model.Audit, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Audits = make([]AuditResponse, len(models))
	for i, mod := range models {
		r.Audits[i].FromModel(mod)
	}
}

// Archive builds the audit row for a record being deleted.
func Archive(table, dataID string, payload any, user string) (model.Audit, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return model.Audit{}, err
	}

	return model.Audit{
		ID:        uuid.NewString(),
		Table:     table,
		DataID:    dataID,
		Payload:   raw,
		DeletedBy: user,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}
