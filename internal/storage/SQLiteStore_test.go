package storage

import (
	"context"
	"path/filepath"
	"testing"

	"contesthub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStore_Contract(t *testing.T) {
	store, err := NewSQLiteStore(context.Background(), filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)
	defer store.Close()

	testStoreContract(t, store)
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")
	ctx := context.Background()

	store, err := NewSQLiteStore(ctx, path)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, models.BucketSolutionLinks, "codeforces-1900", "https://youtu.be/a"))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	v, ok, err := reopened.Get(ctx, models.BucketSolutionLinks, "codeforces-1900")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "https://youtu.be/a", v)
}

func TestSQLiteStore_EnsureSchemaIdempotent(t *testing.T) {
	store, err := NewSQLiteStore(context.Background(), filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)
	defer store.Close()

	assert.NoError(t, store.EnsureSchema(context.Background()))
}
