package model

import "busline/shared/model"

const (
	TableName  = "routes"
	EntityName = "route"

	FieldID          = "id"
	FieldOrigin      = "origin"
	FieldDestination = "destination"
	FieldDistanceKM  = "distance_km"
	FieldDurationMin = "duration_min"
	FieldActive      = "active"
)

type Route struct {
	ID          string `db:"id"`
	Origin      string `db:"origin"`
	Destination string `db:"destination"`
	DistanceKM  int    `db:"distance_km"`
	DurationMin int    `db:"duration_min"`
	Active      bool   `db:"active"`
	model.Metadata
}
