package ports

import (
	"context"
	"errors"
	"trip-log-service/internal/domain"
)

// ErrRouteNotFound is returned when a provider cannot route between the
// requested waypoints.
var ErrRouteNotFound = errors.New("route not found")

// Contract for computing a driving route through an ordered list of
// waypoints (free-form place names or addresses).
type RouteProvider interface {
	// Return total distance, duration and geometry of the route visiting
	// waypoints in order.
	GetRoute(ctx context.Context, waypoints []string) (domain.Route, error)
}
