package model

import "busline/shared/model"

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldTripID        = "trip_id"
	FieldCustomerName  = "customer_name"
	FieldCustomerEmail = "customer_email"
	FieldCustomerPhone = "customer_phone"
	FieldStatus        = "status"
	FieldSource        = "source"
	FieldTotalPrice    = "total_price"

	SeatTableName  = "booking_seats"
	SeatEntityName = "booking_seat"

	SeatFieldID            = "id"
	SeatFieldBookingID     = "booking_id"
	SeatFieldTripSeatID    = "trip_seat_id"
	SeatFieldSeatNumber    = "seat_number"
	SeatFieldPassengerName = "passenger_name"
	SeatFieldPrice         = "price"
)

// Booking is one confirmed (or later cancelled) purchase of one or more
// seats on a trip. TotalPrice is the sum of the per-seat prices locked at
// claim time, in minor currency units.
type Booking struct {
	ID            string `db:"id"`
	TripID        string `db:"trip_id"`
	CustomerName  string `db:"customer_name"`
	CustomerEmail string `db:"customer_email"`
	CustomerPhone string `db:"customer_phone"`
	Status        string `db:"status"`
	Source        string `db:"source"`
	TotalPrice    int64  `db:"total_price"`

	Origin      string `db:"origin"      table:"routes"`
	Destination string `db:"destination" table:"routes"`
	RegNumber   string `db:"reg_number"  table:"buses"`

	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "JOIN trips ON trips.id = bookings.trip_id " +
		"JOIN routes ON routes.id = trips.route_id " +
		"JOIN buses ON buses.id = trips.bus_id"
}

// BookingSeat is one line of a booking: a claimed seat, the passenger it was
// sold to and the price locked at claim time. TripSeatID points back at the
// trip_seats row the claim flipped to booked.
type BookingSeat struct {
	ID            string `db:"id"`
	BookingID     string `db:"booking_id"`
	TripSeatID    string `db:"trip_seat_id"`
	SeatNumber    string `db:"seat_number"`
	PassengerName string `db:"passenger_name"`
	Price         int64  `db:"price"`
	model.Metadata
}
