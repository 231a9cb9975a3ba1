package repositories

import (
	"fmt"
	"time"
	"trip-log-service/internal/domain"
)

// JSONB column shapes for trips.summary and trips.route.
type summaryRecord struct {
	TotalDistanceMiles float64   `json:"total_distance_miles"`
	TotalDrivingHours  float64   `json:"total_driving_hours"`
	TotalOnDutyHours   float64   `json:"total_on_duty_hours"`
	TotalElapsedHours  float64   `json:"total_elapsed_hours"`
	RestBreaks         int       `json:"rest_breaks"`
	DailyResets        int       `json:"daily_resets"`
	Restarts           int       `json:"restarts"`
	FuelingStops       int       `json:"fueling_stops"`
	Stops              int       `json:"stops"`
	StartAt            time.Time `json:"start_at"`
	EndAt              time.Time `json:"end_at"`
}

type routeRecord struct {
	DistanceMeters  int          `json:"distance_meters"`
	DurationSeconds int          `json:"duration_seconds"`
	Geometry        [][2]float64 `json:"geometry,omitempty"`
}

func toSummaryRecord(s domain.TripSummary) summaryRecord {
	return summaryRecord(s)
}

func (r summaryRecord) summary(loc *time.Location) domain.TripSummary {
	s := domain.TripSummary(r)
	s.StartAt = s.StartAt.In(loc)
	s.EndAt = s.EndAt.In(loc)
	return s
}

func toRouteRecord(r *domain.Route) *routeRecord {
	if r == nil {
		return nil
	}
	rec := routeRecord(*r)
	return &rec
}

func (r *routeRecord) route() *domain.Route {
	if r == nil {
		return nil
	}
	route := domain.Route(*r)
	return &route
}

// parseDutyStatus rejects log_entries rows whose status column holds
// anything but a known duty status.
func parseDutyStatus(s string) (domain.DutyStatus, error) {
	status := domain.DutyStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("unknown duty status %q", s)
	}
	return status, nil
}
