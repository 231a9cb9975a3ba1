package broker

import (
	"time"
	"trip-log-service/internal/domain"
)

type tripPlannedEvent struct {
	TripID            string    `json:"trip_id"`
	CurrentLocation   string    `json:"current_location"`
	PickupLocation    string    `json:"pickup_location"`
	DropoffLocation   string    `json:"dropoff_location"`
	DistanceMiles     float64   `json:"distance_miles"`
	DrivingHours      float64   `json:"driving_hours"`
	TotalElapsedHours float64   `json:"total_elapsed_hours"`
	Stops             int       `json:"stops"`
	StartAt           time.Time `json:"start_at"`
	EndAt             time.Time `json:"end_at"`
	CreatedAt         time.Time `json:"created_at"`
}

func newTripPlannedEvent(t *domain.Trip) tripPlannedEvent {
	return tripPlannedEvent{
		TripID:            t.ID,
		CurrentLocation:   t.CurrentLocation,
		PickupLocation:    t.PickupLocation,
		DropoffLocation:   t.DropoffLocation,
		DistanceMiles:     t.DistanceMiles,
		DrivingHours:      t.DrivingHours,
		TotalElapsedHours: t.Summary.TotalElapsedHours,
		Stops:             t.Summary.Stops,
		StartAt:           t.Summary.StartAt,
		EndAt:             t.Summary.EndAt,
		CreatedAt:         t.CreatedAt,
	}
}
