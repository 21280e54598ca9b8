package interfaces

import "context"

// KeyValueStore is a flat bucket/key -> value mapping. Writes are visible to
// every subsequent read; the last write wins.
type KeyValueStore interface {
	Get(ctx context.Context, bucket, key string) (string, bool, error)
	GetAll(ctx context.Context, bucket string) (map[string]string, error)
	Set(ctx context.Context, bucket, key, value string) error
	Remove(ctx context.Context, bucket, key string) error
	Close() error
}
