package dto

type StatsResponse struct {
	ActiveBuses   int `json:"active_buses"`
	TotalRoutes   int `json:"total_routes"`
	UpcomingTrips int `json:"upcoming_trips"`
	BookingsToday int `json:"bookings_today"`
	TotalBookings int `json:"total_bookings"`
}
