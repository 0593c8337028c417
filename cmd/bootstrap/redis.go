package bootstrap

import (
	"context"
	"log/slog"

	"car-rental/internal/handler/middleware"
	"car-rental/internal/infra/cache"
	"car-rental/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewIdempotencyStore,
	),
)

// NewIdempotencyStore returns a nil store when idempotency is disabled, which
// turns the middleware into a pass-through.
func NewIdempotencyStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (middleware.IdempotencyStore, error) {
	if !cfg.Redis.IdempotencyEnabled {
		logger.Info("idempotency disabled")
		return nil, nil
	}

	client, err := cache.NewRedisClient(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return closeRedis(client)
		},
	})

	return cache.NewIdempotencyStore(client, cfg.Redis.IdempotencyTTL), nil
}

func closeRedis(client *redis.Client) error {
	if err := client.Close(); err != nil {
		slog.Warn("failed to close redis client", "error", err.Error())
		return err
	}
	return nil
}
