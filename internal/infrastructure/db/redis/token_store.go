// Package redis stores the console session token in Redis, for consoles
// that share one session across hosts or restart on ephemeral disks.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dialTimeout = 5 * time.Second

// Config selects the server and the key holding the token.
type Config struct {
	Addr string
	DB   int
	Key  string
	// DialTimeout bounds connecting and the startup ping. Defaults to 5s.
	DialTimeout time.Duration
}

// TokenStore keeps the session token under a single Redis key with no TTL;
// expiry is the backend's business.
type TokenStore struct {
	client *redis.Client
	key    string
}

// Open connects, checks the server with a ping and returns a store that
// owns the connection. Close releases it.
func Open(ctx context.Context, cfg Config) (*TokenStore, error) {
	timeout := cfg.DialTimeout
	if timeout <= 0 {
		timeout = dialTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		DB:          cfg.DB,
		DialTimeout: timeout,
	})

	store := NewTokenStore(client, cfg.Key)

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := store.Ping(pingCtx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("open token store at %s: %w", cfg.Addr, err)
	}
	return store, nil
}

// NewTokenStore wraps an existing client.
func NewTokenStore(client *redis.Client, key string) *TokenStore {
	return &TokenStore{client: client, key: key}
}

// Load returns the stored token, or "" when the key does not exist.
func (s *TokenStore) Load(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load token: %w", err)
	}
	return token, nil
}

func (s *TokenStore) Save(ctx context.Context, token string) error {
	if err := s.client.Set(ctx, s.key, token, 0).Err(); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

func (s *TokenStore) Delete(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}

// Ping reports whether Redis is reachable. Readiness probes use it.
func (s *TokenStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *TokenStore) Close() error {
	return s.client.Close()
}
