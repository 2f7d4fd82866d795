// internal/common/database/redis.go
package database

import (
	"context"
	"fmt"
	"time"

	"inventory-assistant/internal/common/config"

	"github.com/redis/go-redis/v9"
)

// RedisClient holds the aggregate cache.
type RedisClient struct {
	Client *redis.Client
	ttl    time.Duration
}

func NewRedis(cfg config.RedisConfig) *RedisClient {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
		PoolSize:     10,
		MinIdleConns: 2,
	})
	return &RedisClient{Client: rdb, ttl: time.Duration(cfg.CacheTTL) * time.Second}
}

// TTL is how long cached aggregates live.
func (c *RedisClient) TTL() time.Duration {
	return c.ttl
}

func (c *RedisClient) Ping(ctx context.Context) error {
	if err := c.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (c *RedisClient) Close() error {
	if c.Client != nil {
		return c.Client.Close()
	}
	return nil
}
