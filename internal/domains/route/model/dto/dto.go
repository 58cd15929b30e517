package dto

import (
	"busline/internal/domains/route/model"
	"busline/shared"
	gDto "busline/shared/dto"
	gModel "busline/shared/model"
	"busline/shared/timezone"

	"github.com/google/uuid"
)

type CreateRouteRequest struct {
	Origin      string `json:"origin"       validate:"required,max=100"`
	Destination string `json:"destination"  validate:"required,max=100"`
	DistanceKM  int    `json:"distance_km"  validate:"required,gt=0"`
	DurationMin int    `json:"duration_min" validate:"required,gt=0"`
}

func (c *CreateRouteRequest) ToModel(user string) model.Route {
	return model.Route{
		ID:          uuid.NewString(),
		Origin:      c.Origin,
		Destination: c.Destination,
		DistanceKM:  c.DistanceKM,
		DurationMin: c.DurationMin,
		Active:      true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRouteRequest struct {
	Origin      string `db:"origin"       json:"origin"       validate:"omitempty,max=100"`
	Destination string `db:"destination"  json:"destination"  validate:"omitempty,max=100"`
	DistanceKM  int    `db:"distance_km"  json:"distance_km"  validate:"omitempty,gt=0"`
	DurationMin int    `db:"duration_min" json:"duration_min" validate:"omitempty,gt=0"`
	Active      *bool  `db:"active"       json:"active"       validate:"omitempty"`
}

type RouteResponse struct {
	ID          string `json:"id"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	DistanceKM  int    `json:"distance_km"`
	DurationMin int    `json:"duration_min"`
	Active      bool   `json:"active"`
	gDto.Metadata
}

func (r *RouteResponse) FromModel(model model.Route) {
	r.ID = model.ID
	r.Origin = model.Origin
	r.Destination = model.Destination
	r.DistanceKM = model.DistanceKM
	r.DurationMin = model.DurationMin
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetRoutesResponse struct {
	Routes    []RouteResponse `json:"routes"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetRoutesResponse) FromModels(models []model.Route, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Routes = make([]RouteResponse, len(models))
	for i, mod := range models {
		r.Routes[i].FromModel(mod)
	}
}
