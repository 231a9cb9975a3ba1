package ports

import (
	"context"
	"trip-log-service/internal/domain"
)

// Outbound notifications about planned trips.
type TripEventPublisher interface {
	PublishTripPlanned(ctx context.Context, trip *domain.Trip) error
}
