package cache_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"travelbot/internal/config"
	"travelbot/pkg/cache"
)

var Module = fx.Provide(provideStore)

// provideStore uses Redis when REDIS_URL is set and an in-process cache
// otherwise.
func provideStore(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (cache.Store, error) {
	if cfg.RedisURL == "" {
		log.Info("using in-memory cache")
		return cache.NewMemoryStore(5 * time.Minute), nil
	}

	client, err := cache.NewRedisClient(cfg.RedisURL)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	log.Info("using redis cache")
	return cache.NewRedisStore(client, "travelbot:"), nil
}
