package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// CachedProvider memoizes route lookups in redis. Directions between two
// fixed points are stable enough for quoting, so a cache hit skips a billable
// API call. Cache failures degrade to a direct lookup, never to an error.
type CachedProvider struct {
	next Provider
	rdb  *redis.Client
	ttl  time.Duration
}

func NewCachedProvider(next Provider, rdb *redis.Client, ttl time.Duration) *CachedProvider {
	return &CachedProvider{next: next, rdb: rdb, ttl: ttl}
}

func (c *CachedProvider) Route(ctx context.Context, origin, destination LatLng) (Estimate, error) {
	key := cacheKey(origin, destination)

	cached, err := c.rdb.Get(ctx, key).Result()
	if err == nil {
		var est Estimate
		if unmarshalErr := json.Unmarshal([]byte(cached), &est); unmarshalErr == nil {
			return est, nil
		}
		// Corrupt entry: fall through and overwrite.
	} else if !errors.Is(err, redis.Nil) {
		slog.Warn("route cache read failed", "key", key, "error", err)
	}

	est, err := c.next.Route(ctx, origin, destination)
	if err != nil {
		return Estimate{}, err
	}

	payload, err := json.Marshal(est)
	if err == nil {
		if setErr := c.rdb.Set(ctx, key, payload, c.ttl).Err(); setErr != nil {
			slog.Warn("route cache write failed", "key", key, "error", setErr)
		}
	}

	return est, nil
}

// cacheKey rounds coordinates to ~11m so nearby geocoding jitter still hits.
func cacheKey(origin, destination LatLng) string {
	return fmt.Sprintf("route:%.4f,%.4f:%.4f,%.4f",
		origin.Lat, origin.Lng, destination.Lat, destination.Lng)
}
