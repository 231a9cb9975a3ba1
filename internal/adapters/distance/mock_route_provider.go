package distance

import (
	"context"
	"fmt"
	"strings"
	"trip-log-service/internal/domain"
	"trip-log-service/internal/ports"
)

// MockRoute is a canned route for an exact waypoint sequence.
type MockRoute struct {
	Waypoints []string
	Meters    int
	Seconds   int
}

// MockRouteProvider answers GetRoute from a fixed table. Unknown waypoint
// sequences return ports.ErrRouteNotFound.
type MockRouteProvider struct {
	m     map[string]domain.Route
	Calls int
}

func NewMockRouteProvider(routes []MockRoute) *MockRouteProvider {
	m := make(map[string]domain.Route, len(routes))
	for _, r := range routes {
		m[strings.Join(r.Waypoints, "|")] = domain.Route{DistanceMeters: r.Meters, DurationSeconds: r.Seconds}
	}
	return &MockRouteProvider{m: m}
}

func (p *MockRouteProvider) GetRoute(ctx context.Context, waypoints []string) (domain.Route, error) {
	p.Calls++
	r, ok := p.m[strings.Join(waypoints, "|")]
	if !ok {
		return domain.Route{}, fmt.Errorf("mock route %q: %w", waypoints, ports.ErrRouteNotFound)
	}

	return r, nil
}
