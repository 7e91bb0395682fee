package blobstore

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T, store BlobStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("get missing", func(t *testing.T) {
		_, err := store.Get(ctx, "missing")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("put get roundtrip", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "blob", []byte("hello")))

		data, err := store.Get(ctx, "blob")
		require.NoError(t, err)
		assert.Equal(t, []byte("hello"), data)
	})

	t.Run("put replaces", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "blob", []byte("v1")))
		require.NoError(t, store.Put(ctx, "blob", []byte("v2")))

		data, err := store.Get(ctx, "blob")
		require.NoError(t, err)
		assert.Equal(t, []byte("v2"), data)
	})

	t.Run("nested names", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "snap/field-0000", []byte("f0")))
		require.NoError(t, store.Put(ctx, "snap/field-0001", []byte("f1")))
		require.NoError(t, store.Put(ctx, "other/blob", []byte("x")))

		names, err := store.List(ctx, "snap/")
		require.NoError(t, err)
		sort.Strings(names)
		assert.Equal(t, []string{"snap/field-0000", "snap/field-0001"}, names)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "gone", []byte("x")))
		require.NoError(t, store.Delete(ctx, "gone"))

		_, err := store.Get(ctx, "gone")
		require.ErrorIs(t, err, ErrNotFound)

		// Deleting again is not an error.
		require.NoError(t, store.Delete(ctx, "gone"))
	})
}

func TestMemoryStore(t *testing.T) {
	testStore(t, NewMemoryStore())
}

func TestMemoryStoreIsolation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	data := []byte("abc")
	require.NoError(t, store.Put(ctx, "blob", data))
	data[0] = 'x'

	got, err := store.Get(ctx, "blob")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)

	got[1] = 'y'
	again, err := store.Get(ctx, "blob")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}

func TestLocalStore(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	testStore(t, store)
}
