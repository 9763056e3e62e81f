package database

import (
	"context"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"task-board-api/internal/config"
)

var redisClient *redis.Client

// InitRedis establishes the redis connection used for the workflow rule cache.
// A redis:// URL takes precedence over the addr/password/db fields.
func InitRedis(cfg config.RedisConfig, log *zap.Logger) error {
	var client *redis.Client

	if cfg.URL != "" {
		opts, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return err
		}
		client = redis.NewClient(opts)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
	}

	if err := client.Ping(context.Background()).Err(); err != nil {
		return err
	}

	redisClient = client
	log.Info("Redis connection established", zap.String("addr", cfg.Addr), zap.Int("db", cfg.DB))
	return nil
}

// GetRedis returns the redis client, or nil when redis is not configured.
// Callers must treat a nil client as cache-disabled, not as an error.
func GetRedis() *redis.Client {
	return redisClient
}
