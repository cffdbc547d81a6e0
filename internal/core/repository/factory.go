package repository

import (
	"context"
	"fmt"

	rdb "github.com/redis/go-redis/v9"

	"github.com/duynhne/shakplay/config"
	database "github.com/duynhne/shakplay/internal/core"
	"github.com/duynhne/shakplay/internal/core/domain"
)

// NewTokenStore builds the store selected by cfg.Session.Store. The returned
// close function releases any connection the store holds.
func NewTokenStore(ctx context.Context, cfg *config.Config) (domain.TokenStore, func(), error) {
	noop := func() {}

	switch cfg.Session.Store {
	case config.StoreMemory:
		return NewMemoryTokenStore(cfg.GetMemoryTTLDuration()), noop, nil

	case config.StoreRedis:
		client := rdb.NewClient(&rdb.Options{
			Addr: cfg.Session.RedisAddr,
			DB:   cfg.Session.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, noop, fmt.Errorf("ping redis %s: %w", cfg.Session.RedisAddr, err)
		}
		return NewRedisTokenStore(client, cfg.Session.RedisPrefix, domain.TokenSlot), func() { _ = client.Close() }, nil

	case config.StorePostgres:
		pool, err := database.Connect(ctx, cfg.Session.PostgresDSN)
		if err != nil {
			return nil, noop, err
		}
		store := NewPgxTokenStore(pool, domain.TokenSlot)
		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, noop, fmt.Errorf("ensure token schema: %w", err)
		}
		return store, pool.Close, nil

	case config.StoreFile, "":
		return NewFileTokenStore(cfg.Session.FilePath), noop, nil

	default:
		return nil, noop, fmt.Errorf("unknown token store %q", cfg.Session.Store)
	}
}
