package model

import (
	"busline/shared/model"
	"fmt"
)

const (
	BusTableName  = "buses"
	BusEntityName = "bus"

	BusTypeTableName  = "bus_types"
	BusTypeEntityName = "bus_type"

	FieldID         = "id"
	FieldRegNumber  = "reg_number"
	FieldBusTypeID  = "bus_type_id"
	FieldName       = "name"
	FieldActive     = "active"
	FieldLowerSeats = "lower_seats"
	FieldUpperSeats = "upper_seats"
)

// BusType describes a coach layout as a lower and an upper deck seat count.
// Seat labels are derived from the layout when a trip is scheduled.
type BusType struct {
	ID         string `db:"id"`
	Name       string `db:"name"`
	LowerSeats int    `db:"lower_seats"`
	UpperSeats int    `db:"upper_seats"`
	model.Metadata
}

// SeatLabels expands the layout into labels L1..Ln for the lower deck and
// U1..Um for the upper deck.
func (t BusType) SeatLabels() []string {
	labels := make([]string, 0, t.LowerSeats+t.UpperSeats)

	for i := 1; i <= t.LowerSeats; i++ {
		labels = append(labels, fmt.Sprintf("L%d", i))
	}

	for i := 1; i <= t.UpperSeats; i++ {
		labels = append(labels, fmt.Sprintf("U%d", i))
	}

	return labels
}

type Bus struct {
	ID        string `db:"id"`
	RegNumber string `db:"reg_number"`
	BusTypeID string `db:"bus_type_id"`
	Active    bool   `db:"active"`

	BusTypeName string `db:"bus_type_name" table:"bus_types" column:"name"`
	LowerSeats  int    `db:"lower_seats"   table:"bus_types"`
	UpperSeats  int    `db:"upper_seats"   table:"bus_types"`

	model.Metadata
}

func (Bus) GetJoinQuery() string {
	return "JOIN bus_types ON bus_types.id = buses.bus_type_id"
}

// SeatLabels mirrors BusType.SeatLabels using the joined layout columns.
func (b Bus) SeatLabels() []string {
	return BusType{LowerSeats: b.LowerSeats, UpperSeats: b.UpperSeats}.SeatLabels()
}
