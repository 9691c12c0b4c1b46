package helpers

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"

	"github.com/anuntech/expense-backend/internal/logger"
)

var RedisTimeout = 30 * time.Second

// RedisHelper parses connectionUrl and returns a client once the server answers a ping.
func RedisHelper(ctx context.Context, connectionUrl string) (*redis.Client, error) {
	opt, err := redis.ParseURL(connectionUrl)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	opt.PoolSize = 20
	opt.MinIdleConns = 2
	opt.ConnMaxIdleTime = 200 * time.Second

	client := redis.NewClient(opt)

	ping := func() error {
		pingCtx, cancel := context.WithTimeout(ctx, Timeout)
		defer cancel()
		return client.Ping(pingCtx).Err()
	}

	retry := backoff.NewExponentialBackOff()
	retry.MaxElapsedTime = RedisTimeout

	notify := func(err error, wait time.Duration) {
		logger.L().Warnf("Redis not reachable, retrying in %s: %v", wait, err)
	}
	if err := backoff.RetryNotify(ping, backoff.WithContext(retry, ctx), notify); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	logger.L().Infof("Connected to Redis at %s", opt.Addr)

	return client, nil
}
