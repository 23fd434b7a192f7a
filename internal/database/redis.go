package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/caltrack/caltrack/config"
	"github.com/caltrack/caltrack/pkg/logger"
)

// NewRedisClient creates a Redis client for the catalog cache. Returns
// (nil, nil) when no address is configured; the cache is optional.
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	if cfg.RedisAddr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log := logger.Get()
	log.Info().Str("addr", cfg.RedisAddr).Msg("successfully connected to Redis")
	return client, nil
}
