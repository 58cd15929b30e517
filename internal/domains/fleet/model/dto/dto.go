package dto

import (
	"busline/internal/domains/fleet/model"
	"busline/shared"
	gDto "busline/shared/dto"
	gModel "busline/shared/model"
	"busline/shared/timezone"

	"github.com/google/uuid"
)

type CreateBusRequest struct {
	RegNumber string `json:"reg_number"  validate:"required,max=20"`
	BusTypeID string `json:"bus_type_id" validate:"required,uuid4"`
	Active    *bool  `json:"active"      validate:"omitempty"`
}

func (c *CreateBusRequest) ToModel(user string) model.Bus {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Bus{
		ID:        uuid.NewString(),
		RegNumber: c.RegNumber,
		BusTypeID: c.BusTypeID,
		Active:    active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateBusRequest struct {
	RegNumber string `db:"reg_number"  json:"reg_number"  validate:"omitempty,max=20"`
	BusTypeID string `db:"bus_type_id" json:"bus_type_id" validate:"omitempty,uuid4"`
	Active    *bool  `db:"active"      json:"active"      validate:"omitempty"`
}

type BusResponse struct {
	ID          string `json:"id"`
	RegNumber   string `json:"reg_number"`
	BusTypeID   string `json:"bus_type_id"`
	BusTypeName string `json:"bus_type_name"`
	LowerSeats  int    `json:"lower_seats"`
	UpperSeats  int    `json:"upper_seats"`
	Active      bool   `json:"active"`
	gDto.Metadata
}

func (r *BusResponse) FromModel(model model.Bus) {
	r.ID = model.ID
	r.RegNumber = model.RegNumber
	r.BusTypeID = model.BusTypeID
	r.BusTypeName = model.BusTypeName
	r.LowerSeats = model.LowerSeats
	r.UpperSeats = model.UpperSeats
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetBusesResponse struct {
	Buses     []BusResponse `json:"buses"`
	TotalPage int           `json:"total_page"`
	TotalData int           `json:"total_data"`
}

func (r *GetBusesResponse) FromModels(models []model.Bus, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Buses = make([]BusResponse, len(models))
	for i, mod := range models {
		r.Buses[i].FromModel(mod)
	}
}

type BusTypeResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	LowerSeats int    `json:"lower_seats"`
	UpperSeats int    `json:"upper_seats"`
}

func (r *BusTypeResponse) FromModel(model model.BusType) {
	r.ID = model.ID
	r.Name = model.Name
	r.LowerSeats = model.LowerSeats
	r.UpperSeats = model.UpperSeats
}

type GetBusTypesResponse struct {
	BusTypes []BusTypeResponse `json:"bus_types"`
}

func (r *GetBusTypesResponse) FromModels(models []model.BusType) {
	r.BusTypes = make([]BusTypeResponse, len(models))
	for i, mod := range models {
		r.BusTypes[i].FromModel(mod)
	}
}
