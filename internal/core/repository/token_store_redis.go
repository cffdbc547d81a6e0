package repository

import (
	"context"
	"errors"

	rdb "github.com/redis/go-redis/v9"
)

// RedisTokenStore keeps the token under prefix+slot in Redis, letting
// several processes of one user share a session.
type RedisTokenStore struct {
	c   *rdb.Client
	key string
}

// NewRedisTokenStore creates a RedisTokenStore.
func NewRedisTokenStore(c *rdb.Client, prefix, slot string) *RedisTokenStore {
	return &RedisTokenStore{c: c, key: prefix + slot}
}

func (s *RedisTokenStore) Load(ctx context.Context) (string, error) {
	token, err := s.c.Get(ctx, s.key).Result()
	if errors.Is(err, rdb.Nil) {
		return "", nil
	}
	return token, err
}

func (s *RedisTokenStore) Save(ctx context.Context, token string) error {
	return s.c.Set(ctx, s.key, token, 0).Err()
}

func (s *RedisTokenStore) Clear(ctx context.Context) error {
	return s.c.Del(ctx, s.key).Err()
}
