package distance

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"trip-log-service/internal/adapters/cache"
	"trip-log-service/internal/domain"
	"trip-log-service/internal/platform/obs"
	"trip-log-service/internal/ports"

	"googlemaps.github.io/maps"
)

// GoogleRouteProvider implements RouteProvider with the Google Directions
// API. Intermediate waypoints are passed as via stops; the result sums
// every leg of the first route.
type GoogleRouteProvider struct {
	client     *maps.Client
	routeCache ports.RouteCache
}

func NewGoogleRouteProvider(apiKey string, routeCache ports.RouteCache, opts ...maps.ClientOption) (*GoogleRouteProvider, error) {
	if apiKey == "" {
		return nil, errors.New("google maps api key is empty")
	}

	client, err := maps.NewClient(append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GoogleRouteProvider{client: client, routeCache: routeCache}, nil
}

func (g *GoogleRouteProvider) GetRoute(ctx context.Context, waypoints []string) (_ domain.Route, err error) {
	defer obs.Time(ctx, "google.GetRoute")(&err)

	if len(waypoints) < 2 {
		return domain.Route{}, errors.New("get google route: at least two waypoints are required")
	}

	normalized := make([]string, len(waypoints))
	for i, w := range waypoints {
		normalized[i] = cache.Normalize(w)
		if normalized[i] == "" {
			return domain.Route{}, fmt.Errorf("get google route: waypoint %d is empty", i+1)
		}
	}

	key := cache.RouteKey(normalized)
	if g.routeCache != nil {
		route, ok, err := g.routeCache.Get(ctx, key)
		if err != nil {
			log.Printf("route cache read failed: key=%q err=%v", key, err)
		} else if ok {
			return route, nil
		}
	}

	r := &maps.DirectionsRequest{
		Origin:      normalized[0],
		Destination: normalized[len(normalized)-1],
		Waypoints:   normalized[1 : len(normalized)-1],
		Mode:        maps.TravelModeDriving,
		Region:      "us",
	}

	routes, _, err := g.client.Directions(ctx, r)
	if err != nil {
		if isNoRouteStatus(err) {
			return domain.Route{}, fmt.Errorf("get google route: %w: %v", ports.ErrRouteNotFound, err)
		}
		return domain.Route{}, fmt.Errorf("get google route: maps api error: %w", err)
	}

	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return domain.Route{}, fmt.Errorf("get google route: %w", ports.ErrRouteNotFound)
	}

	var route domain.Route
	for _, leg := range routes[0].Legs {
		route.DistanceMeters += leg.Distance.Meters
		route.DurationSeconds += int(leg.Duration.Seconds() + 0.5)
	}

	points, err := routes[0].OverviewPolyline.Decode()
	if err != nil {
		return domain.Route{}, fmt.Errorf("get google route: decode polyline: %w", err)
	}
	route.Geometry = make([][2]float64, 0, len(points))
	for _, p := range points {
		route.Geometry = append(route.Geometry, [2]float64{p.Lng, p.Lat})
	}

	if g.routeCache != nil {
		if err := g.routeCache.Put(ctx, key, route); err != nil {
			log.Printf("route cache write failed: key=%q err=%v", key, err)
		}
	}

	return route, nil
}

// The maps client reports API status codes only through the error text.
func isNoRouteStatus(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "ZERO_RESULTS") || strings.Contains(msg, "NOT_FOUND")
}
