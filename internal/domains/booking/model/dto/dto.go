package dto

import (
	"busline/internal/domains/booking/model"
	"busline/shared"
	"busline/shared/constant"
	gDto "busline/shared/dto"
	gModel "busline/shared/model"
	"busline/shared/timezone"

	"github.com/google/uuid"
)

type ReserveRequest struct {
	TripID        string   `json:"trip_id"        validate:"required,uuid4"`
	CustomerName  string   `json:"customer_name"  validate:"required,max=100"`
	CustomerEmail string   `json:"customer_email" validate:"omitempty,email,max=100"`
	CustomerPhone string   `json:"customer_phone" validate:"required,max=20"`
	Seats         []string `json:"seats"          validate:"required,min=1,unique,dive,required,max=10"`
	Source        string   `json:"source"         validate:"omitempty,oneof=admin web"`
}

// ToModel builds the booking prototype. ID, Status and TotalPrice are filled
// by the reservation once the seats are claimed.
func (c *ReserveRequest) ToModel(user string) model.Booking {
	source := c.Source
	if source == constant.Empty {
		source = constant.BookingSourceWeb
	}

	return model.Booking{
		ID:            uuid.NewString(),
		TripID:        c.TripID,
		CustomerName:  c.CustomerName,
		CustomerEmail: c.CustomerEmail,
		CustomerPhone: c.CustomerPhone,
		Source:        source,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type ReservedSeat struct {
	SeatNumber string `json:"seat_number"`
	Price      int64  `json:"price"`
}

type ReserveResponse struct {
	BookingID  string         `json:"booking_id"`
	TripID     string         `json:"trip_id"`
	Status     string         `json:"status"`
	Source     string         `json:"source"`
	Seats      []ReservedSeat `json:"seats"`
	TotalPrice int64          `json:"total_price"`
}

func (r *ReserveResponse) FromModels(booking model.Booking, lines []model.BookingSeat) {
	r.BookingID = booking.ID
	r.TripID = booking.TripID
	r.Status = booking.Status
	r.Source = booking.Source
	r.TotalPrice = booking.TotalPrice

	r.Seats = make([]ReservedSeat, len(lines))
	for i, line := range lines {
		r.Seats[i] = ReservedSeat{
			SeatNumber: line.SeatNumber,
			Price:      line.Price,
		}
	}
}

// BookingConfirmedEvent is the payload published after a successful
// reservation.
type BookingConfirmedEvent struct {
	BookingID  string   `json:"booking_id"`
	TripID     string   `json:"trip_id"`
	Seats      []string `json:"seats"`
	TotalPrice int64    `json:"total_price"`
	Source     string   `json:"source"`
}

type BookingResponse struct {
	ID            string `json:"id"`
	TripID        string `json:"trip_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
	Status        string `json:"status"`
	Source        string `json:"source"`
	TotalPrice    int64  `json:"total_price"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	RegNumber     string `json:"reg_number"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.TripID = model.TripID
	r.CustomerName = model.CustomerName
	r.CustomerEmail = model.CustomerEmail
	r.CustomerPhone = model.CustomerPhone
	r.Status = model.Status
	r.Source = model.Source
	r.TotalPrice = model.TotalPrice
	r.Origin = model.Origin
	r.Destination = model.Destination
	r.RegNumber = model.RegNumber
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
