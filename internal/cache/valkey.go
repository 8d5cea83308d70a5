// Package cache wraps the Valkey connection used for two things: a short-TTL
// raw-JSON cache of the match list, and the session-token revocation list.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"ticketfoot/internal/config"
)

const (
	matchesListKey   = "matches:list"
	matchesListTTL   = 30 * time.Second
	revokedKeyPrefix = "sessions:revoked:"
)

type ValkeyClient struct {
	client *redis.Client
}

func NewValkeyClient(cfg config.ValkeyConfig) (*ValkeyClient, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           0,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
		DialTimeout:  5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Valkey: %w", err)
	}

	return &ValkeyClient{client: rdb}, nil
}

// GetMatchesRaw returns the cached match-list response body, if present.
// Raw JSON is stored to skip re-marshaling on the hot path.
func (v *ValkeyClient) GetMatchesRaw(ctx context.Context) ([]byte, error) {
	raw, err := v.client.Get(ctx, matchesListKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("matches list not in cache")
		}
		return nil, fmt.Errorf("cache lookup error: %w", err)
	}
	return raw, nil
}

// SetMatches caches the match-list response body. Errors are deliberately
// dropped: the cache is an optimization, never a dependency.
func (v *ValkeyClient) SetMatches(ctx context.Context, data any) {
	raw, err := json.Marshal(data)
	if err != nil {
		return
	}
	v.client.Set(ctx, matchesListKey, raw, matchesListTTL)
}

// InvalidateMatches drops the cached match list after inventory changes.
func (v *ValkeyClient) InvalidateMatches(ctx context.Context) {
	v.client.Del(ctx, matchesListKey)
}

// RevokeToken adds a token id to the revocation list until the token would
// have expired on its own; after that the entry is useless and lapses.
func (v *ValkeyClient) RevokeToken(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return v.client.Set(ctx, revokedKeyPrefix+jti, "1", ttl).Err()
}

// IsTokenRevoked reports whether a token id is on the revocation list.
func (v *ValkeyClient) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	err := v.client.Get(ctx, revokedKeyPrefix+jti).Err()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("revocation lookup error: %w", err)
	}
	return true, nil
}

func (v *ValkeyClient) Close() error {
	return v.client.Close()
}
