package archivestore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "archive.db"))
	require.NoError(t, store.Init(context.Background()))
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLiteStore(t)

	entry := sampleEntry(1)
	require.NoError(t, store.Save(ctx, entry))

	got, err := store.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, entry, got)
}

func TestSQLiteStoreGetMissing(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLiteStore(t)

	_, err := store.Get(ctx, 42)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestSQLiteStoreListOrder(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLiteStore(t)

	for _, id := range []int{2, 3, 1} {
		require.NoError(t, store.Save(ctx, sampleEntry(id)))
	}

	entries, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for i, e := range entries {
		assert.Equal(t, i+1, e.ID)
	}
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "archive.db")

	store := NewSQLiteStore(path)
	require.NoError(t, store.Init(ctx))
	require.NoError(t, store.Save(ctx, sampleEntry(1)))
	require.NoError(t, store.Close())

	reopened := NewSQLiteStore(path)
	require.NoError(t, reopened.Init(ctx))
	defer reopened.Close()

	got, err := reopened.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "sphere", got.FunctionName)
}

func TestSQLiteStoreRequiresInit(t *testing.T) {
	store := NewSQLiteStore("")
	assert.Error(t, store.Init(context.Background()))

	_, err := store.Get(context.Background(), 1)
	assert.Error(t, err)
}
