package dto

import "time"

type PlanTripRequest struct {
	CurrentLocation  string     `json:"current_location"`
	PickupLocation   string     `json:"pickup_location"`
	DropoffLocation  string     `json:"dropoff_location"`
	CurrentCycleUsed *float64   `json:"current_cycle_used"`
	StartAt          *time.Time `json:"start_at"`
}

type RouteResponse struct {
	DistanceMeters  int          `json:"distance_meters"`
	DurationSeconds int          `json:"duration_seconds"`
	Geometry        [][2]float64 `json:"geometry"`
}

type TripResponse struct {
	ID               string             `json:"id"`
	CurrentLocation  string             `json:"current_location"`
	PickupLocation   string             `json:"pickup_location"`
	DropoffLocation  string             `json:"dropoff_location"`
	CurrentCycleUsed float64            `json:"current_cycle_used"`
	DistanceMiles    float64            `json:"distance_miles"`
	DrivingHours     float64            `json:"driving_hours"`
	Route            *RouteResponse     `json:"route,omitempty"`
	Summary          SummaryResponse    `json:"summary"`
	Logs             []LogEntryResponse `json:"logs,omitempty"`
	DailyLogs        []DailyLogResponse `json:"daily_logs,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
}

type ListTripsResponse struct {
	Trips []TripResponse `json:"trips"`
}
