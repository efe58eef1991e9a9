package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/medibook/medibook/internal/common"
	"github.com/redis/go-redis/v9"
)

// RedisStore implements Store on top of a Redis client. TTL eviction is left
// entirely to Redis.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore constructs a RedisStore bound to the given client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("redis get: %w", err)
	}
	return value, nil
}

func (s *RedisStore) Remove(ctx context.Context, key string) error {
	// DEL on a missing key is a no-op in Redis, which matches the contract.
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
