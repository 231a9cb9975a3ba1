package ports

import (
	"context"
	"errors"
	"trip-log-service/internal/domain"
)

var ErrTripNotFound = errors.New("trip not found")

// Port: persistence boundary for planned trips and their duty logs.
type TripRepository interface {
	// Store a trip and its log entries atomically.
	CreateTrip(ctx context.Context, trip *domain.Trip) error
	// Load a trip with its log entries; ErrTripNotFound if absent.
	GetTrip(ctx context.Context, id string) (*domain.Trip, error)
	// List the most recent trips, newest first, without log entries.
	ListTrips(ctx context.Context, limit int) ([]*domain.Trip, error)
}
