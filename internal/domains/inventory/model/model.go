package model

import "busline/shared/model"

const (
	TableName  = "trip_seats"
	EntityName = "trip_seat"

	FieldID         = "id"
	FieldTripID     = "trip_id"
	FieldSeatNumber = "seat_number"
	FieldStatus     = "status"
	FieldPrice      = "price"
	FieldBookingID  = "booking_id"
)

// TripSeat is one sellable seat on one trip. Status moves from available to
// booked exactly once; BookingID is a back-reference set at claim time and
// deliberately carries no foreign key so the seat claim can precede the
// booking row inside the reservation transaction.
type TripSeat struct {
	ID         string  `db:"id"`
	TripID     string  `db:"trip_id"`
	SeatNumber string  `db:"seat_number"`
	Status     string  `db:"status"`
	Price      int64   `db:"price"`
	BookingID  *string `db:"booking_id"`
	model.Metadata
}
