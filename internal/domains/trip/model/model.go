package model

import (
	"busline/shared/model"
	"time"
)

const (
	TableName  = "trips"
	EntityName = "trip"

	FieldID          = "id"
	FieldRouteID     = "route_id"
	FieldBusID       = "bus_id"
	FieldDepartureAt = "departure_at"
	FieldArrivalAt   = "arrival_at"
	FieldBasePrice   = "base_price"
	FieldStatus      = "status"
)

// Trip is one scheduled departure of a bus over a route. BasePrice is the
// default per-seat fare in minor currency units; each seat carries its own
// price snapshot in trip_seats.
type Trip struct {
	ID          string    `db:"id"`
	RouteID     string    `db:"route_id"`
	BusID       string    `db:"bus_id"`
	DepartureAt time.Time `db:"departure_at"`
	ArrivalAt   time.Time `db:"arrival_at"`
	BasePrice   int64     `db:"base_price"`
	Status      string    `db:"status"`

	Origin      string `db:"origin"      table:"routes"`
	Destination string `db:"destination" table:"routes"`
	RegNumber   string `db:"reg_number"  table:"buses"`

	model.Metadata
}

func (Trip) GetJoinQuery() string {
	return "JOIN routes ON routes.id = trips.route_id JOIN buses ON buses.id = trips.bus_id"
}
