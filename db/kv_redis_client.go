package db

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// KVRedisClient holds the Redis client and its context.
type KVRedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewKVRedisClient wraps an initialized go-redis client.
func NewKVRedisClient(ctx context.Context, client *redis.Client) *KVRedisClient {
	return &KVRedisClient{
		client: client,
		ctx:    ctx,
	}
}

// Set sets a key-value pair with no expiry.
func (r *KVRedisClient) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// Get retrieves the value for a given key.
func (r *KVRedisClient) Get(key string) (string, error) {
	val, err := r.client.Get(r.ctx, key).Result()
	if err == redis.Nil {
		return "", fmt.Errorf("key not found: %s", key)
	}
	return val, err
}

// Keys lists keys matching the given pattern.
func (r *KVRedisClient) Keys(pattern string) ([]string, error) {
	return r.client.Keys(r.ctx, pattern).Result()
}

// Del removes a key.
func (r *KVRedisClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}

// Ping checks the connection.
func (r *KVRedisClient) Ping() error {
	return r.client.Ping(r.ctx).Err()
}

// GetContext exposes the context the client operates under.
func (r *KVRedisClient) GetContext() context.Context {
	return r.ctx
}
