package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each bucket in one hash named <prefix>:<bucket>.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisStore(ctx context.Context, redisURL, prefix string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis unreachable: %w", err)
	}
	return &RedisStore{rdb: rdb, prefix: prefix}, nil
}

func (s *RedisStore) hashKey(bucket string) string {
	if s.prefix == "" {
		return bucket
	}
	return s.prefix + ":" + bucket
}

func (s *RedisStore) Get(ctx context.Context, bucket, key string) (string, bool, error) {
	v, err := s.rdb.HGet(ctx, s.hashKey(bucket), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *RedisStore) GetAll(ctx context.Context, bucket string) (map[string]string, error) {
	return s.rdb.HGetAll(ctx, s.hashKey(bucket)).Result()
}

func (s *RedisStore) Set(ctx context.Context, bucket, key, value string) error {
	return s.rdb.HSet(ctx, s.hashKey(bucket), key, value).Err()
}

func (s *RedisStore) Remove(ctx context.Context, bucket, key string) error {
	return s.rdb.HDel(ctx, s.hashKey(bucket), key).Err()
}

func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
