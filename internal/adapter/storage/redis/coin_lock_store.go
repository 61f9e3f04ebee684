package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// CoinLockStore implements ports.CoinLockStore using Redis SET NX. It is a
// fast-path guard in front of the database row lock: losing the race here
// means another collector already holds the coin.
type CoinLockStore struct {
	client *goredis.Client
	prefix string
}

// NewCoinLockStore creates a new Redis-backed coin lock store.
func NewCoinLockStore(client *goredis.Client) *CoinLockStore {
	return &CoinLockStore{
		client: client,
		prefix: "coinlock:",
	}
}

// Acquire atomically claims the collection lock for a coin. Returns true if
// the lock was taken, false if another collector holds it.
func (s *CoinLockStore) Acquire(ctx context.Context, coinID string, ttl time.Duration) (bool, error) {
	key := s.prefix + coinID
	result, err := s.client.SetArgs(ctx, key, 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if err == goredis.Nil {
			// Key already exists, another collect is in flight
			return false, nil
		}
		return false, fmt.Errorf("redis coin lock acquire: %w", err)
	}
	return result == "OK", nil
}

// Release drops the collection lock for a coin.
func (s *CoinLockStore) Release(ctx context.Context, coinID string) error {
	key := s.prefix + coinID
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis coin lock release: %w", err)
	}
	return nil
}
