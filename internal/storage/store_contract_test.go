package storage

import (
	"context"
	"testing"

	"contesthub/internal/models"
	"contesthub/internal/storage/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testStoreContract checks the behavior every KeyValueStore backend shares.
func testStoreContract(t *testing.T, store interfaces.KeyValueStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		v, ok, err := store.Get(ctx, models.BucketSolutionLinks, "codeforces-1")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, v)
	})

	t.Run("empty bucket", func(t *testing.T) {
		all, err := store.GetAll(ctx, "unused")
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, models.BucketSolutionLinks, "codeforces-1900", "https://youtu.be/a"))
		v, ok, err := store.Get(ctx, models.BucketSolutionLinks, "codeforces-1900")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "https://youtu.be/a", v)
	})

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, models.BucketSolutionLinks, "codeforces-1900", "https://youtu.be/b"))
		v, _, err := store.Get(ctx, models.BucketSolutionLinks, "codeforces-1900")
		require.NoError(t, err)
		assert.Equal(t, "https://youtu.be/b", v)
	})

	t.Run("buckets are isolated", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, models.BucketSettings, "codeforces-1900", "other"))
		links, err := store.GetAll(ctx, models.BucketSolutionLinks)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"codeforces-1900": "https://youtu.be/b"}, links)

		settings, err := store.GetAll(ctx, models.BucketSettings)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"codeforces-1900": "other"}, settings)
	})

	t.Run("remove", func(t *testing.T) {
		require.NoError(t, store.Remove(ctx, models.BucketSolutionLinks, "codeforces-1900"))
		_, ok, err := store.Get(ctx, models.BucketSolutionLinks, "codeforces-1900")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("remove missing is a no-op", func(t *testing.T) {
		assert.NoError(t, store.Remove(ctx, models.BucketSolutionLinks, "leetcode-none"))
	})

	t.Run("GetAll returns a copy", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, models.BucketSolutionLinks, "leetcode-weekly-contest-350", "https://youtu.be/c"))
		all, err := store.GetAll(ctx, models.BucketSolutionLinks)
		require.NoError(t, err)
		all["leetcode-weekly-contest-350"] = "mutated"

		v, _, err := store.Get(ctx, models.BucketSolutionLinks, "leetcode-weekly-contest-350")
		require.NoError(t, err)
		assert.Equal(t, "https://youtu.be/c", v)
	})
}
