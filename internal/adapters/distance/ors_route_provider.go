package distance

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"
	"trip-log-service/internal/adapters/cache"
	"trip-log-service/internal/domain"
	"trip-log-service/internal/platform/obs"
	"trip-log-service/internal/ports"
)

// GeocodeCache is the persistent address -> coordinates store consulted
// before calling the geocoding API.
type GeocodeCache interface {
	GetMany(ctx context.Context, addresses []string) (map[string]domain.Coordinates, error)
	PutMany(ctx context.Context, results map[string]domain.Coordinates) error
}

// ORSRouteProvider implements RouteProvider using OpenRouteService.
//
// It coordinates:
//   - Address normalization
//   - Persistent geocode and route caching
//   - Concurrent geocoding of waypoints
//   - Directions calls with retry/backoff
//
// The provider is safe for concurrent use. Either cache may be nil.
type ORSRouteProvider struct {
	session      *http.Client
	apiKey       string
	baseURL      string
	profile      string
	retryBackoff time.Duration
	concurrency  int
	routeCache   ports.RouteCache
	geocodeCache GeocodeCache
}

func NewORSRouteProvider(
	apiKey string,
	routeCache ports.RouteCache,
	geocodeCache GeocodeCache,
	concurrency int,
) (*ORSRouteProvider, error) {
	if apiKey == "" {
		return nil, errors.New("ORS api key is empty")
	}
	if concurrency < 1 {
		concurrency = 1
	}

	provider := &ORSRouteProvider{
		session:      &http.Client{Timeout: 15 * time.Second},
		apiKey:       apiKey,
		baseURL:      "https://api.openrouteservice.org",
		profile:      "driving-hgv",
		retryBackoff: 200 * time.Millisecond,
		concurrency:  concurrency,
		routeCache:   routeCache,
		geocodeCache: geocodeCache,
	}

	return provider, nil
}

// GetRoute geocodes the waypoints and asks ORS for a heavy-goods-vehicle
// route visiting them in order.
func (o *ORSRouteProvider) GetRoute(ctx context.Context, waypoints []string) (_ domain.Route, err error) {
	defer obs.Time(ctx, "ors.GetRoute")(&err)

	if len(waypoints) < 2 {
		return domain.Route{}, errors.New("get ORS route: at least two waypoints are required")
	}

	normalized := make([]string, 0, len(waypoints))
	for i, w := range waypoints {
		n := cache.Normalize(w)
		if n == "" {
			return domain.Route{}, fmt.Errorf("get ORS route: waypoint %d is empty", i+1)
		}
		normalized = append(normalized, n)
	}

	key := cache.RouteKey(normalized)

	// Check the route cache before geocoding or calling directions.
	if o.routeCache != nil {
		route, ok, err := o.routeCache.Get(ctx, key)
		if err != nil {
			log.Printf("route cache read failed: key=%q err=%v", key, err)
		} else if ok {
			return route, nil
		}
	}

	coords, err := o.resolveCoordinates(ctx, normalized)
	if err != nil {
		return domain.Route{}, fmt.Errorf("get ORS route: %w", err)
	}

	points := make([]domain.Coordinates, 0, len(normalized))
	for _, w := range normalized {
		c, ok := coords[w]
		if !ok {
			return domain.Route{}, fmt.Errorf("get ORS route: missing coordinate for %q", w)
		}
		points = append(points, c)
	}

	route, err := o.fetchDirections(ctx, points)
	if err != nil {
		return domain.Route{}, fmt.Errorf("get ORS route: %w", err)
	}

	if o.routeCache != nil {
		if err := o.routeCache.Put(ctx, key, route); err != nil {
			log.Printf("route cache write failed: key=%q err=%v", key, err)
		}
	}

	return route, nil
}

// resolveCoordinates looks addresses up in the geocode cache and geocodes
// the misses, writing them back to the cache.
func (o *ORSRouteProvider) resolveCoordinates(
	ctx context.Context,
	addresses []string,
) (map[string]domain.Coordinates, error) {
	hits := make(map[string]domain.Coordinates)
	if o.geocodeCache != nil {
		var err error
		hits, err = o.geocodeCache.GetMany(ctx, addresses)
		if err != nil {
			return nil, fmt.Errorf("ORS get geocode cache: %w", err)
		}
	}

	misses := make([]string, 0, len(addresses))
	for _, a := range addresses {
		if _, ok := hits[a]; !ok {
			misses = append(misses, a)
		}
	}
	if len(misses) == 0 {
		return hits, nil
	}

	fresh, err := o.geocodeMany(ctx, misses)
	if err != nil {
		return nil, fmt.Errorf("retrieving coordinates: %w", err)
	}

	if o.geocodeCache != nil && len(fresh) > 0 {
		if err := o.geocodeCache.PutMany(ctx, fresh); err != nil {
			log.Printf("geocode cache write failed: %v", err)
		}
	}

	out := make(map[string]domain.Coordinates, len(hits)+len(fresh))
	for k, v := range hits {
		out[k] = v
	}
	for k, v := range fresh {
		out[k] = v
	}
	return out, nil
}
