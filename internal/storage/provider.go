package storage

import (
	"context"
	"fmt"
	"time"

	"contesthub/internal/providers"
	"contesthub/internal/storage/interfaces"
	"contesthub/internal/structures"
)

const connectTimeout = 10 * time.Second

// NewStoreProvider opens the key-value store selected by store.driver and
// wraps it with timing metrics.
func NewStoreProvider(conf *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface) (interfaces.KeyValueStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	var (
		store interfaces.KeyValueStore
		err   error
	)
	switch conf.Store.Driver {
	case "file":
		compressor, cerr := NewZstdCompressor()
		if cerr != nil {
			return nil, cerr
		}
		store, err = NewFileStore(conf.Store.Path, compressor, logger)
	case "sqlite":
		store, err = NewSQLiteStore(ctx, conf.Store.Path)
	case "redis":
		store, err = NewRedisStore(ctx, conf.Store.RedisURL, conf.Store.Prefix)
	case "postgres":
		store, err = NewPostgresStore(ctx, conf.Store.DSN)
	default:
		return nil, fmt.Errorf("unknown store driver %q", conf.Store.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", conf.Store.Driver, err)
	}

	logger.Infof(providers.TypeApp, "Key-value store ready (driver=%s)", conf.Store.Driver)
	return &InstrumentedStore{inner: store, metrics: metrics}, nil
}

type InstrumentedStore struct {
	inner   interfaces.KeyValueStore
	metrics providers.MetricsProviderInterface
}

func (s *InstrumentedStore) Get(ctx context.Context, bucket, key string) (string, bool, error) {
	defer s.observe("get", time.Now())
	return s.inner.Get(ctx, bucket, key)
}

func (s *InstrumentedStore) GetAll(ctx context.Context, bucket string) (map[string]string, error) {
	defer s.observe("get_all", time.Now())
	return s.inner.GetAll(ctx, bucket)
}

func (s *InstrumentedStore) Set(ctx context.Context, bucket, key, value string) error {
	defer s.observe("set", time.Now())
	return s.inner.Set(ctx, bucket, key, value)
}

func (s *InstrumentedStore) Remove(ctx context.Context, bucket, key string) error {
	defer s.observe("remove", time.Now())
	return s.inner.Remove(ctx, bucket, key)
}

func (s *InstrumentedStore) Close() error {
	return s.inner.Close()
}

func (s *InstrumentedStore) observe(op string, start time.Time) {
	s.metrics.ObserveStoreDuration(op, time.Since(start))
}
