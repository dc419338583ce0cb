package redis

import (
	"context"
	"fmt"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/polkiloo/tigercart/internal/config"
	"github.com/polkiloo/tigercart/internal/domain/repository"
)

// Module wires the Redis client and the cart repository.
var Module = fx.Options(
	fx.Provide(newClient),
	fx.Provide(func(client *goredis.Client, logger *slog.Logger) repository.CartRepository {
		return NewCartStore(client, logger)
	}),
	fx.Invoke(registerLifecycle),
)

func newClient(cfg *config.Config) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

func registerLifecycle(lc fx.Lifecycle, client *goredis.Client, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return fmt.Errorf("ping redis: %w", err)
			}
			logger.Info("redis connected", slog.String("addr", client.Options().Addr))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}
