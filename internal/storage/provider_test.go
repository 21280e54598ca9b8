package storage

import (
	"context"
	"path/filepath"
	"testing"

	"contesthub/internal/models"
	"contesthub/internal/structures"
	"contesthub/internal/testutil"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreProvider_Drivers(t *testing.T) {
	mr := miniredis.RunT(t)
	dir := t.TempDir()

	tests := []struct {
		name  string
		store structures.StoreConfig
	}{
		{"file", structures.StoreConfig{Driver: "file", Path: filepath.Join(dir, "store.dat")}},
		{"sqlite", structures.StoreConfig{Driver: "sqlite", Path: filepath.Join(dir, "kv.db")}},
		{"redis", structures.StoreConfig{Driver: "redis", RedisURL: "redis://" + mr.Addr(), Prefix: "test"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics := testutil.NewMockMetrics()
			store, err := NewStoreProvider(&structures.Config{Store: tt.store}, &testutil.MockLogger{}, metrics)
			require.NoError(t, err)
			defer store.Close()

			ctx := context.Background()
			require.NoError(t, store.Set(ctx, models.BucketSolutionLinks, "id", "url"))
			_, _, err = store.Get(ctx, models.BucketSolutionLinks, "id")
			require.NoError(t, err)
			_, err = store.GetAll(ctx, models.BucketSolutionLinks)
			require.NoError(t, err)
			require.NoError(t, store.Remove(ctx, models.BucketSolutionLinks, "id"))

			assert.Equal(t, map[string]int{"set": 1, "get": 1, "get_all": 1, "remove": 1}, metrics.StoreOps)
		})
	}
}

func TestNewStoreProvider_UnknownDriver(t *testing.T) {
	_, err := NewStoreProvider(&structures.Config{Store: structures.StoreConfig{Driver: "etcd"}},
		&testutil.MockLogger{}, testutil.NewMockMetrics())
	assert.ErrorContains(t, err, `unknown store driver "etcd"`)
}

func TestNewStoreProvider_OpenFailureIsWrapped(t *testing.T) {
	_, err := NewStoreProvider(&structures.Config{Store: structures.StoreConfig{Driver: "redis", RedisURL: "bogus"}},
		&testutil.MockLogger{}, testutil.NewMockMetrics())
	assert.ErrorContains(t, err, "open redis store")
}
