package kv

import (
	"context"
	"time"

	"storefront/internal/errors"

	"github.com/go-redis/redis/v8"
)

const (
	redisKeyPrefix   = "storefront:"
	redisPingTimeout = 5 * time.Second
)

type redisStore struct {
	rdb *redis.Client
}

// OpenRedis connects to Redis and checks the connection.
func OpenRedis(addr, password string, db int) (Store, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()

		return nil, errors.Wrap(err, "redis ping failed")
	}

	return &redisStore{rdb: rdb}, nil
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.rdb.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "redis get %s", key)
	}

	return data, nil
}

func (s *redisStore) Put(ctx context.Context, key string, value []byte) error {
	return errors.Wrapf(s.rdb.Set(ctx, redisKeyPrefix+key, value, 0).Err(), "redis set %s", key)
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	return errors.Wrapf(s.rdb.Del(ctx, redisKeyPrefix+key).Err(), "redis del %s", key)
}

func (s *redisStore) Close() error {
	return errors.WithStack(s.rdb.Close())
}
