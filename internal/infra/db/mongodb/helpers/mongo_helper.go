package helpers

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/anuntech/expense-backend/internal/logger"
)

// Timeout bounds every single repository call.
var Timeout = 10 * time.Second

// ConnectTimeout bounds the whole connect-and-ping retry loop.
var ConnectTimeout = 30 * time.Second

// MongoHelper connects to URI and returns databaseName once the server answers a ping.
func MongoHelper(ctx context.Context, URI string, databaseName string) (*mongo.Database, error) {
	var client *mongo.Client

	connect := func() error {
		c, err := mongo.Connect(ctx, options.Client().ApplyURI(URI))
		if err != nil {
			return backoff.Permanent(err)
		}

		pingCtx, cancel := context.WithTimeout(ctx, Timeout)
		defer cancel()
		if err := c.Ping(pingCtx, nil); err != nil {
			_ = c.Disconnect(context.Background())
			return err
		}

		client = c
		return nil
	}

	retry := backoff.NewExponentialBackOff()
	retry.MaxElapsedTime = ConnectTimeout

	notify := func(err error, wait time.Duration) {
		logger.L().Warnf("MongoDB not reachable, retrying in %s: %v", wait, err)
	}
	if err := backoff.RetryNotify(connect, backoff.WithContext(retry, ctx), notify); err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	logger.L().Infof("MongoDB connection established with database %s", databaseName)

	return client.Database(databaseName), nil
}
