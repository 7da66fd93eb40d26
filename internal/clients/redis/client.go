package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"voice-bridge/internal/config"
	"voice-bridge/internal/observability"

	"github.com/redis/go-redis/v9"
)

var ErrNotInitialized = errors.New("Redis client not initialized")

// Client wraps the Redis client with observability
type Client struct {
	client *redis.Client
	logger *observability.Logger
}

// NewClient creates a new Redis client. It returns a nil client when Redis is
// disabled; every method on a nil client is safe to call.
func NewClient(cfg config.RedisConfig, logger *observability.Logger) (*Client, error) {
	if !cfg.Enabled {
		logger.Info(context.Background(), "Redis is disabled, skipping client initialization")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "host", Value: cfg.Host},
		observability.Field{Key: "port", Value: cfg.Port},
		observability.Field{Key: "db", Value: cfg.DB},
	)
	logger.Info(ctx, "successfully connected to Redis")

	return &Client{
		client: client,
		logger: logger,
	}, nil
}

// NewFromClient wraps an existing go-redis client
func NewFromClient(client *redis.Client, logger *observability.Logger) *Client {
	return &Client{client: client, logger: logger}
}

// Close closes the Redis connection
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// IsEnabled reports whether the client is connected
func (c *Client) IsEnabled() bool {
	return c != nil && c.client != nil
}

// HSet writes fields of a hash
func (c *Client) HSet(ctx context.Context, key string, values map[string]interface{}) error {
	if !c.IsEnabled() {
		return ErrNotInitialized
	}
	return c.client.HSet(ctx, key, values).Err()
}

// HGetAll reads every field of a hash
func (c *Client) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	if !c.IsEnabled() {
		return nil, ErrNotInitialized
	}
	return c.client.HGetAll(ctx, key).Result()
}

// ZAdd adds a member with score to a sorted set
func (c *Client) ZAdd(ctx context.Context, key string, members ...redis.Z) error {
	if !c.IsEnabled() {
		return ErrNotInitialized
	}
	return c.client.ZAdd(ctx, key, members...).Err()
}

// ZRem removes members from a sorted set
func (c *Client) ZRem(ctx context.Context, key string, members ...interface{}) error {
	if !c.IsEnabled() {
		return ErrNotInitialized
	}
	return c.client.ZRem(ctx, key, members...).Err()
}

// ZRemRangeByScore drops members scored within [min, max]
func (c *Client) ZRemRangeByScore(ctx context.Context, key, min, max string) error {
	if !c.IsEnabled() {
		return ErrNotInitialized
	}
	return c.client.ZRemRangeByScore(ctx, key, min, max).Err()
}

// ZCard returns the number of members in a sorted set
func (c *Client) ZCard(ctx context.Context, key string) (int64, error) {
	if !c.IsEnabled() {
		return 0, ErrNotInitialized
	}
	return c.client.ZCard(ctx, key).Result()
}

// Del deletes keys
func (c *Client) Del(ctx context.Context, keys ...string) error {
	if !c.IsEnabled() {
		return ErrNotInitialized
	}
	return c.client.Del(ctx, keys...).Err()
}

// Expire sets a TTL on a key
func (c *Client) Expire(ctx context.Context, key string, expiration time.Duration) error {
	if !c.IsEnabled() {
		return ErrNotInitialized
	}
	return c.client.Expire(ctx, key, expiration).Err()
}
