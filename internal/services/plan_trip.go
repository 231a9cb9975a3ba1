package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"trip-log-service/internal/domain"
	"trip-log-service/internal/platform/obs"
	"trip-log-service/internal/ports"

	"github.com/google/uuid"
)

const (
	MetersPerMile          = 1609.34
	DefaultAverageSpeedMPH = 55.0
)

// ErrRouting wraps failures of the routing collaborator.
var ErrRouting = errors.New("routing failed")

type PlanTripRequest struct {
	CurrentLocation  string
	PickupLocation   string
	DropoffLocation  string
	CurrentCycleUsed float64
	StartAt          time.Time
	// AverageSpeedMPH converts route distance to driving time.
	// Zero means DefaultAverageSpeedMPH.
	AverageSpeedMPH float64
}

// PlanTrip routes current -> pickup -> dropoff, generates the duty schedule
// for the resulting distance and stores the trip.
//
// Driving time is derived from distance at a flat average speed rather than
// the provider's duration estimate, so the log is predictable for a given
// distance. The planned event is best effort; events may be nil.
func PlanTrip(
	ctx context.Context,
	req PlanTripRequest,
	provider ports.RouteProvider,
	repo ports.TripRepository,
	events ports.TripEventPublisher,
) (_ *domain.Trip, err error) {
	defer obs.Time(ctx, "services.PlanTrip")(&err)

	current := strings.TrimSpace(req.CurrentLocation)
	pickup := strings.TrimSpace(req.PickupLocation)
	dropoff := strings.TrimSpace(req.DropoffLocation)
	if current == "" || pickup == "" || dropoff == "" {
		return nil, fmt.Errorf("plan trip: %w: current, pickup and dropoff locations are required", ErrInvalidInput)
	}
	if req.CurrentCycleUsed < 0 || req.CurrentCycleUsed >= CycleLimit.Hours() {
		return nil, fmt.Errorf("plan trip: %w: current cycle used must be in [0, %v), got %v",
			ErrInvalidInput, CycleLimit.Hours(), req.CurrentCycleUsed)
	}

	speed := req.AverageSpeedMPH
	if speed == 0 {
		speed = DefaultAverageSpeedMPH
	}
	if speed < 0 || speed > MaxAverageSpeedMPH {
		return nil, fmt.Errorf("plan trip: %w: average speed must be in (0, %v], got %v", ErrInvalidInput, MaxAverageSpeedMPH, speed)
	}

	route, err := provider.GetRoute(ctx, []string{current, pickup, dropoff})
	if err != nil {
		return nil, fmt.Errorf("plan trip: %w: %w", ErrRouting, err)
	}

	miles := float64(route.DistanceMeters) / MetersPerMile
	hours := miles / speed

	logs, summary, err := GenerateSchedule(ScheduleRequest{
		Origin:                 current,
		Pickup:                 pickup,
		Dropoff:                dropoff,
		TotalDistanceMiles:     miles,
		TotalDrivingHours:      hours,
		StartingCycleHoursUsed: req.CurrentCycleUsed,
		SimulationStart:        req.StartAt,
	})
	if err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}

	trip := &domain.Trip{
		ID:               uuid.NewString(),
		CurrentLocation:  current,
		PickupLocation:   pickup,
		DropoffLocation:  dropoff,
		CurrentCycleUsed: req.CurrentCycleUsed,
		DistanceMiles:    miles,
		DrivingHours:     hours,
		Logs:             logs,
		Summary:          summary,
		Route:            &route,
		CreatedAt:        time.Now().UTC(),
	}

	if err := repo.CreateTrip(ctx, trip); err != nil {
		return nil, fmt.Errorf("plan trip: save trip: %w", err)
	}

	if events != nil {
		if err := events.PublishTripPlanned(ctx, trip); err != nil {
			log.Printf("publish trip planned failed: trip_id=%s err=%v", trip.ID, err)
		}
	}

	return trip, nil
}
