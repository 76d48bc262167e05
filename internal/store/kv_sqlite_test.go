package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteKV(t *testing.T) {
	ctx := context.Background()
	kv, err := NewSQLiteKV(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer kv.Close()

	t.Run("missing key", func(t *testing.T) {
		_, ok, err := kv.Load(ctx, "nope")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("round trip", func(t *testing.T) {
		require.NoError(t, kv.Save(ctx, "wishlist", `[{"id":"a"}]`))

		got, ok, err := kv.Load(ctx, "wishlist")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, `[{"id":"a"}]`, got)
	})

	t.Run("upsert overwrites", func(t *testing.T) {
		require.NoError(t, kv.Save(ctx, "wishlist", "first"))
		require.NoError(t, kv.Save(ctx, "wishlist", "second"))

		got, ok, err := kv.Load(ctx, "wishlist")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "second", got)
	})
}

func TestSQLiteKVReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	kv, err := NewSQLiteKV(path)
	require.NoError(t, err)
	require.NoError(t, kv.Save(ctx, "wishlist", "[]"))
	require.NoError(t, kv.Close())

	kv2, err := NewSQLiteKV(path)
	require.NoError(t, err)
	defer kv2.Close()

	got, ok, err := kv2.Load(ctx, "wishlist")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "[]", got)
}

func TestSQLiteKVEmptyPath(t *testing.T) {
	_, err := NewSQLiteKV("")
	assert.Error(t, err)
}
