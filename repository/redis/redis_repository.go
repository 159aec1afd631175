package redis

import (
	"context"
	"errors"
	"time"

	redisclient "github.com/muhammadheryan/car-showroom/cmd/redis"
	goredis "github.com/redis/go-redis/v9"
)

const (
	sessionPrefix    = "session:"
	oauthStatePrefix = "oauth_state:"
)

// Repository defines methods for interacting with Redis key-values
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (uint64, error)
	DeleteSession(ctx context.Context, sessionID string) error
	SetOAuthState(ctx context.Context, state, provider string, ttl time.Duration) error
	ConsumeOAuthState(ctx context.Context, state string) (string, error)
}

type redis struct{}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

// Get retrieves a value by key from Redis
func (r *redis) Get(ctx context.Context, key string) (string, error) {
	client := redisclient.Get()
	if client == nil {
		return "", nil
	}
	return client.Get(ctx, key).Result()
}

// SetWithTTL stores a key/value pair with time-to-live
func (r *redis) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, key, value, ttl).Err()
}

// Delete removes a key from Redis
func (r *redis) Delete(ctx context.Context, key string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, key).Err()
}

// SetSession stores a session with userID and TTL
func (r *redis) SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, sessionPrefix+sessionID, userID, ttl).Err()
}

// GetSession retrieves userID from session
func (r *redis) GetSession(ctx context.Context, sessionID string) (uint64, error) {
	client := redisclient.Get()
	if client == nil {
		return 0, nil
	}
	return client.Get(ctx, sessionPrefix+sessionID).Uint64()
}

// DeleteSession removes a session from Redis
func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, sessionPrefix+sessionID).Err()
}

// SetOAuthState remembers which provider a login state was issued for.
func (r *redis) SetOAuthState(ctx context.Context, state, provider string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, oauthStatePrefix+state, provider, ttl).Err()
}

// ConsumeOAuthState returns the provider bound to state and deletes it, so
// a state can be used once. Unknown or expired states yield "".
func (r *redis) ConsumeOAuthState(ctx context.Context, state string) (string, error) {
	client := redisclient.Get()
	if client == nil {
		return "", nil
	}
	provider, err := client.GetDel(ctx, oauthStatePrefix+state).Result()
	if errors.Is(err, goredis.Nil) {
		return "", nil
	}
	return provider, err
}
