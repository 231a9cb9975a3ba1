package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"trip-log-service/internal/domain"
	"trip-log-service/internal/platform/obs"
)

// SQLRouteCache stores computed routes in Postgres, keyed by RouteKey.
// Entries older than TTL are treated as misses; a zero TTL never expires.
type SQLRouteCache struct {
	DB  *sql.DB
	TTL time.Duration
}

func NewSQLRouteCache(db *sql.DB, ttl time.Duration) *SQLRouteCache {
	return &SQLRouteCache{DB: db, TTL: ttl}
}

func (s *SQLRouteCache) Get(ctx context.Context, key string) (_ domain.Route, _ bool, err error) {
	defer obs.Time(ctx, "route.cache.sql.Get")(&err)

	if s.DB == nil {
		return domain.Route{}, false, errors.New("route cache: db is nil")
	}

	var (
		rec      routeRecord
		geometry []byte
		cachedAt time.Time
	)
	err = s.DB.QueryRowContext(ctx, `
	SELECT distance_meters, duration_seconds, geometry, cached_at
	FROM route_cache
	WHERE route_key = $1;
	`, key).Scan(&rec.DistanceMeters, &rec.DurationSeconds, &geometry, &cachedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Route{}, false, nil
	}
	if err != nil {
		return domain.Route{}, false, fmt.Errorf("get route cache: query route_cache table: %w", err)
	}

	if s.TTL > 0 && time.Since(cachedAt) > s.TTL {
		return domain.Route{}, false, nil
	}

	if len(geometry) > 0 {
		if err := json.Unmarshal(geometry, &rec.Geometry); err != nil {
			return domain.Route{}, false, fmt.Errorf("get route cache: decode geometry: %w", err)
		}
	}

	return rec.route(), true, nil
}

func (s *SQLRouteCache) Put(ctx context.Context, key string, route domain.Route) error {
	if s.DB == nil {
		return errors.New("route cache: db is nil")
	}
	if key == "" {
		return errors.New("insert route cache: key must not be empty")
	}

	geometry, err := json.Marshal(route.Geometry)
	if err != nil {
		return fmt.Errorf("insert route cache: encode geometry: %w", err)
	}

	_, err = s.DB.ExecContext(ctx, `
	INSERT INTO route_cache (route_key, distance_meters, duration_seconds, geometry, cached_at)
	VALUES ($1, $2, $3, $4, NOW())
	ON CONFLICT (route_key) DO UPDATE
	SET distance_meters = EXCLUDED.distance_meters,
		duration_seconds = EXCLUDED.duration_seconds,
		geometry = EXCLUDED.geometry,
		cached_at = EXCLUDED.cached_at;
	`, key, route.DistanceMeters, route.DurationSeconds, string(geometry))
	if err != nil {
		return fmt.Errorf("insert route cache key=%q: %w", key, err)
	}

	return nil
}
