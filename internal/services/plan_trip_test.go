package services

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"
	"trip-log-service/internal/adapters/distance"
	"trip-log-service/internal/adapters/repositories"
	"trip-log-service/internal/domain"
	"trip-log-service/internal/ports"
)

type recordingPublisher struct {
	trips []*domain.Trip
	err   error
}

func (p *recordingPublisher) PublishTripPlanned(ctx context.Context, trip *domain.Trip) error {
	p.trips = append(p.trips, trip)
	return p.err
}

func TestPlanTripStoresScheduledTrip(t *testing.T) {
	provider := distance.NewMockRouteProvider([]distance.MockRoute{
		// 550 miles
		{Waypoints: []string{"Phoenix, AZ", "Tucson, AZ", "El Paso, TX"}, Meters: 885137, Seconds: 30000},
	})
	repo := repositories.NewMemoryTripRepository()
	events := &recordingPublisher{}

	start := time.Date(2026, 3, 2, 6, 0, 0, 0, time.UTC)
	trip, err := PlanTrip(context.Background(), PlanTripRequest{
		CurrentLocation:  " Phoenix, AZ ",
		PickupLocation:   "Tucson, AZ",
		DropoffLocation:  "El Paso, TX",
		CurrentCycleUsed: 12,
		StartAt:          start,
	}, provider, repo, events)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(trip.DistanceMiles-550) > 0.01 {
		t.Fatalf("distance = %v miles, want 550", trip.DistanceMiles)
	}
	if math.Abs(trip.DrivingHours-10) > 0.001 {
		t.Fatalf("driving hours = %v, want 10", trip.DrivingHours)
	}
	if trip.CurrentLocation != "Phoenix, AZ" {
		t.Fatalf("current location not trimmed: %q", trip.CurrentLocation)
	}
	if !trip.Logs[0].Start.Equal(start) {
		t.Fatalf("schedule starts at %v, want %v", trip.Logs[0].Start, start)
	}
	if trip.Summary.RestBreaks != 1 {
		t.Fatalf("rest breaks = %d, want 1", trip.Summary.RestBreaks)
	}

	stored, err := repo.GetTrip(context.Background(), trip.ID)
	if err != nil {
		t.Fatalf("get stored trip: %v", err)
	}
	if len(stored.Logs) != len(trip.Logs) {
		t.Fatalf("stored %d log entries, want %d", len(stored.Logs), len(trip.Logs))
	}

	if len(events.trips) != 1 || events.trips[0].ID != trip.ID {
		t.Fatalf("expected one planned event for trip %s", trip.ID)
	}
}

func TestPlanTripPublishFailureIsNotFatal(t *testing.T) {
	provider := distance.NewMockRouteProvider([]distance.MockRoute{
		{Waypoints: []string{"A", "B", "C"}, Meters: 160934},
	})
	events := &recordingPublisher{err: errors.New("broker down")}

	_, err := PlanTrip(context.Background(), PlanTripRequest{
		CurrentLocation: "A", PickupLocation: "B", DropoffLocation: "C",
	}, provider, repositories.NewMemoryTripRepository(), events)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPlanTripRoutingFailure(t *testing.T) {
	provider := distance.NewMockRouteProvider(nil)

	_, err := PlanTrip(context.Background(), PlanTripRequest{
		CurrentLocation: "A", PickupLocation: "B", DropoffLocation: "C",
	}, provider, repositories.NewMemoryTripRepository(), nil)

	if !errors.Is(err, ErrRouting) {
		t.Fatalf("err = %v, want ErrRouting", err)
	}
	if !errors.Is(err, ports.ErrRouteNotFound) {
		t.Fatalf("err = %v, want ErrRouteNotFound in chain", err)
	}
}

func TestPlanTripValidatesBeforeRouting(t *testing.T) {
	cases := []PlanTripRequest{
		{CurrentLocation: "", PickupLocation: "B", DropoffLocation: "C"},
		{CurrentLocation: "A", PickupLocation: "  ", DropoffLocation: "C"},
		{CurrentLocation: "A", PickupLocation: "B", DropoffLocation: "C", CurrentCycleUsed: 70},
		{CurrentLocation: "A", PickupLocation: "B", DropoffLocation: "C", CurrentCycleUsed: -1},
		{CurrentLocation: "A", PickupLocation: "B", DropoffLocation: "C", AverageSpeedMPH: -5},
		{CurrentLocation: "A", PickupLocation: "B", DropoffLocation: "C", AverageSpeedMPH: MaxAverageSpeedMPH + 1},
	}

	for i, req := range cases {
		provider := distance.NewMockRouteProvider(nil)
		_, err := PlanTrip(context.Background(), req, provider, repositories.NewMemoryTripRepository(), nil)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("case %d: err = %v, want ErrInvalidInput", i, err)
		}
		if provider.Calls != 0 {
			t.Errorf("case %d: provider called %d times", i, provider.Calls)
		}
	}
}
