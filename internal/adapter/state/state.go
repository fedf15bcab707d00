// Package state stores short-lived one-shot OAuth state values.
package state

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps states in Redis with a TTL. Consume uses GETDEL so a
// state can be used once across all server instances.
type RedisStore struct {
	client *redis.Client
	prefix string
	log    *slog.Logger
}

// NewRedisStore connects to the Redis instance at url.
func NewRedisStore(ctx context.Context, url, prefix string, logger *slog.Logger) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &RedisStore{client: client, prefix: prefix + "oauth_state:", log: logger.With("adapter", "redis_state")}, nil
}

// Put stores a state for ttl.
func (s *RedisStore) Put(ctx context.Context, state string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.prefix+state, "1", ttl).Err(); err != nil {
		return fmt.Errorf("store state: %w", err)
	}
	return nil
}

// Consume removes a state and reports whether it was present.
func (s *RedisStore) Consume(ctx context.Context, state string) (bool, error) {
	err := s.client.GetDel(ctx, s.prefix+state).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("consume state: %w", err)
	}
	return true, nil
}

// Ping checks the connection for readiness probes.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// MemoryStore is the single-process store used when Redis is not configured.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]time.Time
	now     func() time.Time
}

// NewMemoryStore creates an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]time.Time), now: time.Now}
}

// Put stores a state for ttl. Expired entries are swept on every write.
func (s *MemoryStore) Put(_ context.Context, state string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for k, exp := range s.entries {
		if !now.Before(exp) {
			delete(s.entries, k)
		}
	}
	s.entries[state] = now.Add(ttl)
	return nil
}

// Consume removes a state and reports whether it was present and unexpired.
func (s *MemoryStore) Consume(_ context.Context, state string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exp, ok := s.entries[state]
	if !ok {
		return false, nil
	}
	delete(s.entries, state)
	return s.now().Before(exp), nil
}

// Ping always succeeds.
func (s *MemoryStore) Ping(context.Context) error { return nil }
