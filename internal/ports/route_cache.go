package ports

import (
	"context"
	"trip-log-service/internal/domain"
)

// Cache of computed routes keyed by normalized waypoint list.
// Get reports ok=false on a miss.
type RouteCache interface {
	Get(ctx context.Context, key string) (route domain.Route, ok bool, err error)
	Put(ctx context.Context, key string, route domain.Route) error
}
