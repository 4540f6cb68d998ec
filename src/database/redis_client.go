package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis states reported by /healthz.
const (
	RedisUp       = "up"
	RedisDown     = "down"
	RedisDisabled = "disabled"
)

// NewRedisClient connects to addr (host:port) and pings it once.
func NewRedisClient(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr, // เช่น localhost:6379
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return client, nil
}

// RedisStatus pings client and reports its state. A nil client means Redis
// was never configured.
func RedisStatus(ctx context.Context, client *redis.Client) string {
	if client == nil {
		return RedisDisabled
	}
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return RedisDown
	}
	return RedisUp
}
