package storage_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillswap/exchange-service/internal/cache"
	"skillswap/exchange-service/internal/storage"
	"skillswap/exchange-service/internal/storage/storagetest"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newCachedStore(t *testing.T) (*storage.CachedStore, *storagetest.FaultyStore) {
	t.Helper()
	lru, err := cache.NewLRU(64)
	require.NoError(t, err)
	inner := storagetest.NewFaultyStore(storage.NewMemoryStore())
	return storage.NewCachedStore(inner, lru, time.Minute, storage.ReadMostly, quietLogger()), inner
}

func TestCachedStoreServesReadMostlyFromCache(t *testing.T) {
	ctx := context.Background()
	store, inner := newCachedStore(t)
	storagetest.Seed(t, store, storage.Skills, map[string]any{"_id": "s1", "skillName": "Go"})

	for i := 0; i < 3; i++ {
		docs, err := store.GetAll(ctx, storage.Skills)
		require.NoError(t, err)
		assert.Len(t, docs, 1)

		_, err = store.GetByID(ctx, storage.Skills, "s1")
		require.NoError(t, err)
	}

	assert.Equal(t, 1, inner.Calls(storagetest.OpGetAll, storage.Skills))
	assert.Equal(t, 1, inner.Calls(storagetest.OpGetByID, storage.Skills))
}

func TestCachedStoreInvalidatesOnWrite(t *testing.T) {
	ctx := context.Background()
	store, inner := newCachedStore(t)
	storagetest.Seed(t, store, storage.Skills, map[string]any{"_id": "s1", "skillName": "Go"})

	_, err := store.GetAll(ctx, storage.Skills)
	require.NoError(t, err)
	_, err = store.GetByID(ctx, storage.Skills, "s1")
	require.NoError(t, err)

	require.NoError(t, store.Update(ctx, storage.Skills, "s1", json.RawMessage(`{"skillName":"Rust"}`)))

	doc, err := store.GetByID(ctx, storage.Skills, "s1")
	require.NoError(t, err)
	assert.Contains(t, string(doc), "Rust")

	storagetest.Seed(t, store, storage.Skills, map[string]any{"_id": "s2"})
	docs, err := store.GetAll(ctx, storage.Skills)
	require.NoError(t, err)
	assert.Len(t, docs, 2)
	assert.Equal(t, 2, inner.Calls(storagetest.OpGetAll, storage.Skills))
}

func TestCachedStoreBypassesChatCollections(t *testing.T) {
	ctx := context.Background()
	store, inner := newCachedStore(t)

	for i := 0; i < 3; i++ {
		_, err := store.GetAll(ctx, storage.Messages)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, inner.Calls(storagetest.OpGetAll, storage.Messages))
}

func TestCachedStoreDoesNotCacheErrors(t *testing.T) {
	ctx := context.Background()
	store, inner := newCachedStore(t)
	inner.Fail(storagetest.OpGetAll, storage.Matches, nil)

	_, err := store.GetAll(ctx, storage.Matches)
	assert.True(t, errors.Is(err, storagetest.ErrInjected))

	inner.Heal()
	docs, err := store.GetAll(ctx, storage.Matches)
	require.NoError(t, err)
	assert.Empty(t, docs)
}
