package dto

import (
	"busline/internal/domains/trip/model"
	"busline/shared"
	"busline/shared/constant"
	gDto "busline/shared/dto"
	gModel "busline/shared/model"
	"busline/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateTripRequest struct {
	RouteID     string `json:"route_id"     validate:"required,uuid4"`
	BusID       string `json:"bus_id"       validate:"required,uuid4"`
	DepartureAt string `json:"departure_at" validate:"required"`
	ArrivalAt   string `json:"arrival_at"   validate:"required"`
	BasePrice   int64  `json:"base_price"   validate:"required,gt=0"`
}

func (c *CreateTripRequest) ToModel(user string) (model.Trip, error) {
	departure, err := timezone.Parse(time.RFC3339, c.DepartureAt)
	if err != nil {
		return model.Trip{}, err
	}

	arrival, err := timezone.Parse(time.RFC3339, c.ArrivalAt)
	if err != nil {
		return model.Trip{}, err
	}

	return model.Trip{
		ID:          uuid.NewString(),
		RouteID:     c.RouteID,
		BusID:       c.BusID,
		DepartureAt: departure,
		ArrivalAt:   arrival,
		BasePrice:   c.BasePrice,
		Status:      constant.TripStatusScheduled,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateTripRequest struct {
	DepartureAt string `json:"departure_at" validate:"omitempty"`
	ArrivalAt   string `json:"arrival_at"   validate:"omitempty"`
	Status      string `db:"status"        json:"status" validate:"omitempty,oneof=scheduled in-progress completed cancelled"`
}

type TripResponse struct {
	ID          string `json:"id"`
	RouteID     string `json:"route_id"`
	BusID       string `json:"bus_id"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	RegNumber   string `json:"reg_number"`
	DepartureAt string `json:"departure_at"`
	ArrivalAt   string `json:"arrival_at"`
	BasePrice   int64  `json:"base_price"`
	Status      string `json:"status"`
	gDto.Metadata
}

func (r *TripResponse) FromModel(model model.Trip) {
	r.ID = model.ID
	r.RouteID = model.RouteID
	r.BusID = model.BusID
	r.Origin = model.Origin
	r.Destination = model.Destination
	r.RegNumber = model.RegNumber
	r.DepartureAt = timezone.Format(model.DepartureAt, constant.DateFormat)
	r.ArrivalAt = timezone.Format(model.ArrivalAt, constant.DateFormat)
	r.BasePrice = model.BasePrice
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetTripsResponse struct {
	Trips     []TripResponse `json:"trips"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetTripsResponse) FromModels(models []model.Trip, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Trips = make([]TripResponse, len(models))
	for i, mod := range models {
		r.Trips[i].FromModel(mod)
	}
}
