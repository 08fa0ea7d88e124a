package caching

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore holds short-lived auth state: hashed refresh tokens and
// the revocation blacklist. Resource data is never cached here.
type TokenStore interface {
	SetString(ctx context.Context, key, value string, ttl time.Duration) error
	GetString(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

type redisTokenStore struct {
	client *redis.Client
}

// NewRedisTokenStore connects to redis at addr.
func NewRedisTokenStore(addr, password string, db int) TokenStore {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &redisTokenStore{client: client}
}

func (s *redisTokenStore) SetString(ctx context.Context, key, value string, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

func (s *redisTokenStore) GetString(ctx context.Context, key string) (string, error) {
	return s.client.Get(ctx, key).Result()
}

func (s *redisTokenStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

func (s *redisTokenStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
