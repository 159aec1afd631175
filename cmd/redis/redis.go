package redisclient

import (
	"context"
	"fmt"

	"github.com/muhammadheryan/car-showroom/cmd/config"
	"github.com/muhammadheryan/car-showroom/utils/logger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var client *redis.Client

// New connects to redis, which holds login sessions and OAuth states, and
// pings it once with the dial timeout as deadline.
func New(cfg *config.Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config provided")
	}

	rc := cfg.Redis
	addr := fmt.Sprintf("%s:%d", rc.Host, rc.Port)
	c := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     rc.Password,
		DB:           rc.DB,
		PoolSize:     rc.PoolSize,
		DialTimeout:  rc.DialTimeout,
		ReadTimeout:  rc.ReadTimeout,
		WriteTimeout: rc.WriteTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), rc.DialTimeout+rc.ReadTimeout)
	defer cancel()

	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return fmt.Errorf("unable to ping redis at %s: %w", addr, err)
	}
	logger.Info("redis connected", zap.String("addr", addr), zap.Int("db", rc.DB))

	client = c
	return nil
}

// Set installs an already configured client, e.g. one pointing at a test server.
func Set(c *redis.Client) {
	client = c
}

func Get() *redis.Client {
	return client
}

func Close() error {
	if client == nil {
		return nil
	}
	return client.Close()
}
