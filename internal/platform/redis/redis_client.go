// Package redis opens the optional Redis connection used for caching.
package redis

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config holds the Redis connection settings.
type Config struct {
	Host     string
	Port     string
	Password string
}

// LoadConfigFromEnv reads REDIS_HOST, REDIS_PORT and REDIS_PASSWORD.
func LoadConfigFromEnv() Config {
	return Config{
		Host:     os.Getenv("REDIS_HOST"),
		Port:     os.Getenv("REDIS_PORT"),
		Password: os.Getenv("REDIS_PASSWORD"),
	}
}

// Enabled reports whether a Redis host is configured.
func (c Config) Enabled() bool {
	return c.Host != ""
}

// Addr returns host:port, defaulting the port to 6379.
func (c Config) Addr() string {
	port := c.Port
	if port == "" {
		port = "6379"
	}
	return c.Host + ":" + port
}

// NewRedisClient connects and pings. The caller decides whether a failure is fatal.
func NewRedisClient(ctx context.Context, cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       0,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		slog.Error("Redis connection failed", "address", cfg.Addr(), "error", err)
		_ = rdb.Close()
		return nil, err
	}

	slog.Info("Redis connection successful", "address", cfg.Addr())
	return rdb, nil
}
