package dto

import (
	"busline/internal/domains/inventory/model"
)

type SeatResponse struct {
	SeatNumber string `json:"seat_number"`
	Status     string `json:"status"`
	Price      int64  `json:"price"`
}

type TripSeatsResponse struct {
	TripID string         `json:"trip_id"`
	Seats  []SeatResponse `json:"seats"`
}

func (r *TripSeatsResponse) FromModels(tripID string, models []model.TripSeat) {
	r.TripID = tripID

	r.Seats = make([]SeatResponse, len(models))
	for i, mod := range models {
		r.Seats[i] = SeatResponse{
			SeatNumber: mod.SeatNumber,
			Status:     mod.Status,
			Price:      mod.Price,
		}
	}
}
