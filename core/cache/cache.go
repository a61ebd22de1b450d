package cache

import (
	"context"
	"fmt"
	"time"

	"volunteerhub/core/config"
	"volunteerhub/core/constants"
	"volunteerhub/core/logger"

	"github.com/redis/go-redis/v9"
)

// Cache wraps the Redis client used for token blacklisting and the per-event
// chat pub/sub channels.
type Cache interface {
	BlacklistToken(ctx context.Context, token string, ttl time.Duration) error
	IsTokenBlacklisted(ctx context.Context, token string) (bool, error)

	StoreOAuthState(ctx context.Context, state string, ttl time.Duration) error
	ConsumeOAuthState(ctx context.Context, state string) (bool, error)

	PublishEventMessage(ctx context.Context, eventID string, payload []byte) error
	SubscribeEventMessages(ctx context.Context, eventID string) *redis.PubSub

	Client() *redis.Client
	Close() error
}

type redisCache struct {
	client *redis.Client
}

func NewCache(cfg config.Config) (Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Cache:NewCache:Ping:Error:", err)
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("Redis initialized successfully", "addr", cfg.RedisAddr(), "db", cfg.Redis.DB)
	return &redisCache{client: client}, nil
}

func (c *redisCache) BlacklistToken(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // already expired, nothing to blacklist
	}
	key := constants.RedisKeyTokenBlacklist + token
	if err := c.client.Set(ctx, key, "1", ttl).Err(); err != nil {
		logger.Error("Cache:BlacklistToken:Error:", err)
		return err
	}
	return nil
}

func (c *redisCache) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	key := constants.RedisKeyTokenBlacklist + token
	n, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		logger.Error("Cache:IsTokenBlacklisted:Error:", err)
		return false, err
	}
	return n > 0, nil
}

func (c *redisCache) StoreOAuthState(ctx context.Context, state string, ttl time.Duration) error {
	key := constants.RedisKeyOAuthState + state
	if err := c.client.Set(ctx, key, "1", ttl).Err(); err != nil {
		logger.Error("Cache:StoreOAuthState:Error:", err)
		return err
	}
	return nil
}

// ConsumeOAuthState checks and deletes the state token in one step, so a
// state can only ever be redeemed once.
func (c *redisCache) ConsumeOAuthState(ctx context.Context, state string) (bool, error) {
	key := constants.RedisKeyOAuthState + state
	err := c.client.GetDel(ctx, key).Err()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		logger.Error("Cache:ConsumeOAuthState:Error:", err)
		return false, err
	}
	return true, nil
}

func (c *redisCache) PublishEventMessage(ctx context.Context, eventID string, payload []byte) error {
	channel := constants.RedisChannelEventChat + eventID
	if err := c.client.Publish(ctx, channel, payload).Err(); err != nil {
		logger.Error("Cache:PublishEventMessage:Error:", err)
		return err
	}
	return nil
}

func (c *redisCache) SubscribeEventMessages(ctx context.Context, eventID string) *redis.PubSub {
	channel := constants.RedisChannelEventChat + eventID
	return c.client.Subscribe(ctx, channel)
}

func (c *redisCache) Client() *redis.Client {
	return c.client
}

func (c *redisCache) Close() error {
	return c.client.Close()
}
