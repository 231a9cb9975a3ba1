package domain

import "time"

// Aggregate figures for a generated duty schedule.
type TripSummary struct {
	TotalDistanceMiles float64
	TotalDrivingHours  float64
	TotalOnDutyHours   float64
	TotalElapsedHours  float64
	RestBreaks         int
	DailyResets        int
	Restarts           int
	FuelingStops       int
	Stops              int
	StartAt            time.Time
	EndAt              time.Time
}

// Route geometry and totals returned by a routing provider.
type Route struct {
	DistanceMeters  int
	DurationSeconds int
	// Geometry is the route polyline as [lon, lat] points.
	Geometry [][2]float64
}

// A planned trip with its record of duty status.
//
// Trips are produced by the planner in one shot and are immutable once
// stored.
type Trip struct {
	ID               string
	CurrentLocation  string
	PickupLocation   string
	DropoffLocation  string
	CurrentCycleUsed float64
	DistanceMiles    float64
	DrivingHours     float64
	Logs             []DutyInterval
	Summary          TripSummary
	Route            *Route
	CreatedAt        time.Time
}
