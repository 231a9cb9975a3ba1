package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"trip-log-service/internal/domain"
	"trip-log-service/internal/platform/obs"

	"github.com/redis/go-redis/v9"
)

const redisRoutePrefix = "route:"

// RedisRouteCache keeps computed routes in Redis with an expiry, for
// deployments that share a cache across instances without Postgres.
type RedisRouteCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRouteCache(client *redis.Client, ttl time.Duration) *RedisRouteCache {
	return &RedisRouteCache{client: client, ttl: ttl}
}

func (c *RedisRouteCache) Get(ctx context.Context, key string) (_ domain.Route, _ bool, err error) {
	defer obs.Time(ctx, "route.cache.redis.Get")(&err)

	b, err := c.client.Get(ctx, redisRoutePrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Route{}, false, nil
	}
	if err != nil {
		return domain.Route{}, false, fmt.Errorf("get redis route cache: %w", err)
	}

	var rec routeRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return domain.Route{}, false, fmt.Errorf("get redis route cache: decode %q: %w", key, err)
	}

	return rec.route(), true, nil
}

func (c *RedisRouteCache) Put(ctx context.Context, key string, route domain.Route) error {
	if key == "" {
		return errors.New("put redis route cache: key must not be empty")
	}

	b, err := json.Marshal(toRecord(route))
	if err != nil {
		return fmt.Errorf("put redis route cache: encode: %w", err)
	}

	if err := c.client.Set(ctx, redisRoutePrefix+key, b, c.ttl).Err(); err != nil {
		return fmt.Errorf("put redis route cache key=%q: %w", key, err)
	}
	return nil
}
