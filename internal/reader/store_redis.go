// Copyright (c) 2026 Minar. All rights reserved.

package reader

import (
	"context"
	"errors"
	"fmt"

	"github.com/minarbd/minar/internal/platform/constants"
	"github.com/redis/go-redis/v9"
)

// # Redis State Store

// redisStore implements [StateStore] on Redis.
//
// Every key carries the reader prefix and a sliding TTL: state for a client
// that stops visiting expires after [constants.ReaderStateTTL]. Expiry is
// an accepted degradation, identical to a browser clearing local storage.
type redisStore struct {
	client *redis.Client
}

// NewRedisStore constructs a Redis backed state store.
func NewRedisStore(client *redis.Client) StateStore {
	return &redisStore{client: client}
}

func redisKey(key string) string {
	return constants.RedisPrefixReader + key
}

// Get returns the value for a key; redis.Nil maps to an absent key.
func (store *redisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := store.client.Get(ctx, redisKey(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis: failed to get reader state: %w", err)
	}
	return value, true, nil
}

// Set writes a key and refreshes its retention window.
func (store *redisStore) Set(ctx context.Context, key, value string) error {
	err := store.client.Set(ctx, redisKey(key), value, constants.ReaderStateTTL).Err()
	if err != nil {
		return fmt.Errorf("redis: failed to set reader state: %w", err)
	}
	return nil
}

// Clear removes a key.
func (store *redisStore) Clear(ctx context.Context, key string) error {
	if err := store.client.Del(ctx, redisKey(key)).Err(); err != nil {
		return fmt.Errorf("redis: failed to clear reader state: %w", err)
	}
	return nil
}
