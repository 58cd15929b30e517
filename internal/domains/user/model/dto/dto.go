package dto

import (
	"busline/internal/domains/user/model"
	"busline/shared/constant"
	"busline/shared/timezone"
)

type OperatorResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Role      string `json:"role"`
	LastLogin string `json:"last_login,omitempty"`
	Active    bool   `json:"active"`
}

func (r *OperatorResponse) FromModel(model model.Operator) {
	r.ID = model.ID
	r.Email = model.Email
	r.FullName = model.FullName
	r.Role = model.Role
	r.Active = model.Active

	if model.LastLogin != nil {
		r.LastLogin = timezone.Format(*model.LastLogin, constant.DateFormat)
	}
}
