// Package redis provides the Redis client used by the geocode cache.
package redis

import (
	"context"
	"log/slog"

	"agenda/config"
	"agenda/internal/domain/lifecycle"
	"agenda/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Client wraps the go-redis client with health checking capabilities.
type Client struct {
	*redis.Client
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates a Redis client from the configuration.
// Returns nil if the URL is empty (Redis not configured).
func New(params Params) (*Client, error) {
	if params.Config.Redis == nil || params.Config.Redis.URL == "" {
		params.Logger.Info("Redis not configured, geocode cache disabled")

		return nil, nil
	}

	opts, err := redis.ParseURL(params.Config.Redis.URL)
	if err != nil {
		return nil, errors.Wrap(err, "parse redis URL")
	}

	client := &Client{Client: redis.NewClient(opts)}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Health(ctx); err != nil {
				return errors.Wrap(err, "redis ping failed")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

// Health checks if the Redis connection is healthy.
func (c *Client) Health(ctx context.Context) error {
	return c.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (c *Client) Close() error {
	return c.Client.Close()
}
