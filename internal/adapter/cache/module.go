package cache

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/snstore/backend/internal/config"
	"github.com/snstore/backend/internal/usecase"
)

// Module exposes the catalog cache implementation to the fx graph. Without a
// Redis address the catalog runs uncached.
var Module = fx.Provide(newCache)

type cacheParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

func newCache(p cacheParams) usecase.CatalogCache {
	if p.Config.RedisAddress == "" {
		p.Logger.Info("catalog cache disabled")
		return Noop{}
	}

	client := redis.NewClient(&redis.Options{Addr: p.Config.RedisAddress})
	c := NewRedisCache(client, p.Config.CacheTTL)

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return c.Close()
		},
	})

	p.Logger.Info("catalog cache enabled", slog.String("address", p.Config.RedisAddress))
	return c
}
