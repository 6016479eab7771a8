package kvstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, ok, err := store.Get(KeyCart)
	require.NoError(t, err)
	assert.False(t, ok, "unwritten key should be absent")

	payload := []byte(`[{"productId":"1","quantity":2}]`)
	require.NoError(t, store.Set(KeyCart, payload))

	got, ok, err := store.Get(KeyCart)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, payload, got)
}

func TestFileStoreOverwrite(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyTheme, []byte(`"dark"`)))
	require.NoError(t, store.Set(KeyTheme, []byte(`"light"`)))

	got, ok, err := store.Get(KeyTheme)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`"light"`), got)
}

func TestFileStoreDelete(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyComparison, []byte(`["1"]`)))
	require.NoError(t, store.Delete(KeyComparison))

	_, ok, err := store.Get(KeyComparison)
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent key is not an error.
	require.NoError(t, store.Delete(KeyComparison))
}

func TestFileStoreNamespacesAreIndependent(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyCart, []byte(`[]`)))
	require.NoError(t, store.Set(KeyRatings, []byte(`{"1":5}`)))
	require.NoError(t, store.Delete(KeyCart))

	got, ok, err := store.Get(KeyRatings)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"1":5}`, string(got))
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, store.Set(KeyVisitorCount, []byte("5042")))

	got, ok, err := store.Get(KeyVisitorCount)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("5042"), got)

	// Mutating the returned slice must not affect the stored value.
	got[0] = '9'
	again, _, err := store.Get(KeyVisitorCount)
	require.NoError(t, err)
	assert.Equal(t, []byte("5042"), again)
}
