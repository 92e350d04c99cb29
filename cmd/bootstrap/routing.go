package bootstrap

import (
	"vtcquote/internal/infra/routing"
	"vtcquote/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RoutingModule = fx.Module("routing",
	fx.Provide(
		NewRoutingProvider,
	),
)

// NewRoutingProvider wraps the Google Directions client with the redis route
// cache. Cache failures fall through to the direct lookup.
func NewRoutingProvider(cfg config.Config, rdb *redis.Client) (routing.Provider, error) {
	google, err := routing.NewGoogleProvider(cfg.Maps)
	if err != nil {
		return nil, err
	}
	return routing.NewCachedProvider(google, rdb, cfg.Maps.CacheTTL), nil
}
