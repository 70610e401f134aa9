package storage

import (
	"context"
	"encoding/json"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStores(t *testing.T) map[string]Store {
	t.Helper()

	bs, err := OpenBoltStore(filepath.Join(t.TempDir(), "data", "test.bolt"))
	require.NoError(t, err)
	t.Cleanup(func() { bs.Close() })

	return map[string]Store{
		"memory": NewMemoryStore(),
		"bolt":   bs,
	}
}

func decode(t *testing.T, doc json.RawMessage) map[string]any {
	t.Helper()
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(doc, &out))
	return out
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			all, err := store.GetAll(ctx, Messages)
			require.NoError(t, err)
			assert.Empty(t, all)

			require.NoError(t, store.Create(ctx, Messages, "m1", json.RawMessage(`{"_id":"m1","content":"hi","isRead":false}`)))
			require.NoError(t, store.Create(ctx, Messages, "m2", json.RawMessage(`{"_id":"m2","content":"there"}`)))

			err = store.Create(ctx, Messages, "m1", json.RawMessage(`{"_id":"m1"}`))
			assert.ErrorIs(t, err, ErrAlreadyExists)

			all, err = store.GetAll(ctx, Messages)
			require.NoError(t, err)
			assert.Len(t, all, 2)

			doc, err := store.GetByID(ctx, Messages, "m1")
			require.NoError(t, err)
			assert.Equal(t, "hi", decode(t, doc)["content"])

			_, err = store.GetByID(ctx, Messages, "missing")
			assert.ErrorIs(t, err, ErrNotFound)
			_, err = store.GetByID(ctx, "nocollection", "m1")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestStoreUpdateMergesTopLevelFields(t *testing.T) {
	ctx := context.Background()
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Create(ctx, ContactExchangeRequests, "r1",
				json.RawMessage(`{"_id":"r1","requesterId":"u1","status":"pending","contactTypeRequested":"email"}`)))

			require.NoError(t, store.Update(ctx, ContactExchangeRequests, "r1",
				json.RawMessage(`{"_id":"other","status":"approved","respondedAt":"2024-01-01T00:00:00Z"}`)))

			doc, err := store.GetByID(ctx, ContactExchangeRequests, "r1")
			require.NoError(t, err)
			fields := decode(t, doc)
			assert.Equal(t, "r1", fields["_id"])
			assert.Equal(t, "approved", fields["status"])
			assert.Equal(t, "u1", fields["requesterId"])
			assert.Equal(t, "email", fields["contactTypeRequested"])
			assert.Equal(t, "2024-01-01T00:00:00Z", fields["respondedAt"])

			err = store.Update(ctx, ContactExchangeRequests, "missing", json.RawMessage(`{"status":"approved"}`))
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestStoreUpdateIfGuardsOnField(t *testing.T) {
	ctx := context.Background()
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Create(ctx, ContactExchangeRequests, "r1",
				json.RawMessage(`{"_id":"r1","status":"pending"}`)))

			err := store.UpdateIf(ctx, ContactExchangeRequests, "r1", "status", "approved", json.RawMessage(`{"status":"declined"}`))
			assert.ErrorIs(t, err, ErrConflict)

			require.NoError(t, store.UpdateIf(ctx, ContactExchangeRequests, "r1", "status", "pending", json.RawMessage(`{"status":"approved"}`)))
			doc, err := store.GetByID(ctx, ContactExchangeRequests, "r1")
			require.NoError(t, err)
			assert.Equal(t, "approved", decode(t, doc)["status"])

			err = store.UpdateIf(ctx, ContactExchangeRequests, "r1", "status", "pending", json.RawMessage(`{"status":"declined"}`))
			assert.ErrorIs(t, err, ErrConflict)

			err = store.UpdateIf(ctx, ContactExchangeRequests, "r1", "missingField", "pending", json.RawMessage(`{"status":"declined"}`))
			assert.ErrorIs(t, err, ErrConflict)

			err = store.UpdateIf(ctx, ContactExchangeRequests, "missing", "status", "pending", json.RawMessage(`{"status":"approved"}`))
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestStoreUpdateIfLetsOneConcurrentWriterWin(t *testing.T) {
	ctx := context.Background()
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Create(ctx, ContactExchangeRequests, "r1",
				json.RawMessage(`{"_id":"r1","status":"pending"}`)))

			var (
				wg      sync.WaitGroup
				mu      sync.Mutex
				won     int
				lost    int
				outcome = []string{"approved", "declined"}
			)
			for i := 0; i < 8; i++ {
				wg.Add(1)
				go func(status string) {
					defer wg.Done()
					err := store.UpdateIf(ctx, ContactExchangeRequests, "r1", "status", "pending", json.RawMessage(`{"status":"`+status+`"}`))
					mu.Lock()
					defer mu.Unlock()
					if err == nil {
						won++
					} else if assert.ErrorIs(t, err, ErrConflict) {
						lost++
					}
				}(outcome[i%2])
			}
			wg.Wait()

			assert.Equal(t, 1, won)
			assert.Equal(t, 7, lost)
		})
	}
}

func TestStoreDelete(t *testing.T) {
	ctx := context.Background()
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Create(ctx, Skills, "s1", json.RawMessage(`{"_id":"s1"}`)))
			require.NoError(t, store.Delete(ctx, Skills, "s1"))

			_, err := store.GetByID(ctx, Skills, "s1")
			assert.ErrorIs(t, err, ErrNotFound)
			assert.ErrorIs(t, store.Delete(ctx, Skills, "s1"), ErrNotFound)
		})
	}
}

func TestStoreRejectsNonObjects(t *testing.T) {
	ctx := context.Background()
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, store.Create(ctx, Skills, "s1", json.RawMessage(`[1,2]`)))
		})
	}
}

func TestMemoryStoreKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, store.Create(ctx, Matches, id, json.RawMessage(`{"_id":"`+id+`"}`)))
	}
	require.NoError(t, store.Delete(ctx, Matches, "a"))

	all, err := store.GetAll(ctx, Matches)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "c", decode(t, all[0])["_id"])
	assert.Equal(t, "b", decode(t, all[1])["_id"])
}

func TestBoltStoreListsInKeyOrder(t *testing.T) {
	ctx := context.Background()
	store, err := OpenBoltStore(filepath.Join(t.TempDir(), "order.bolt"))
	require.NoError(t, err)
	defer store.Close()

	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, store.Create(ctx, Matches, id, json.RawMessage(`{"_id":"`+id+`"}`)))
	}

	all, err := store.GetAll(ctx, Matches)
	require.NoError(t, err)
	ids := make([]any, len(all))
	for i, doc := range all {
		ids[i] = decode(t, doc)["_id"]
	}
	assert.Equal(t, []any{"a", "b", "c"}, ids)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	doc := json.RawMessage(`{"_id":"x","v":1}`)
	require.NoError(t, store.Create(ctx, Skills, "x", doc))
	doc[0] = '['

	got, err := store.GetByID(ctx, Skills, "x")
	require.NoError(t, err)
	got[0] = '['

	again, err := store.GetByID(ctx, Skills, "x")
	require.NoError(t, err)
	assert.JSONEq(t, `{"_id":"x","v":1}`, string(again))
}

func TestBoltStorePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "exchange.bolt")

	bs, err := OpenBoltStore(path)
	require.NoError(t, err)
	require.NoError(t, bs.Create(ctx, Conversations, "c1", json.RawMessage(`{"_id":"c1","status":"active"}`)))
	require.NoError(t, bs.Close())

	bs, err = OpenBoltStore(path)
	require.NoError(t, err)
	defer bs.Close()

	doc, err := bs.GetByID(ctx, Conversations, "c1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"_id":"c1","status":"active"}`, string(doc))
}

func TestImportCreatesAndUpdates(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Create(ctx, Matches, "m1", json.RawMessage(`{"_id":"m1","matchTitle":"old","matchConfidenceScore":10}`)))

	result, err := Import(ctx, store, Matches, []json.RawMessage{
		json.RawMessage(`{"_id":"m1","matchTitle":"new"}`),
		json.RawMessage(`{"_id":"m2","matchTitle":"fresh"}`),
	})
	require.NoError(t, err)
	assert.Equal(t, ImportResult{Created: 1, Updated: 1}, result)

	doc, err := store.GetByID(ctx, Matches, "m1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"_id":"m1","matchTitle":"new","matchConfidenceScore":10}`, string(doc))
}

func TestImportRequiresID(t *testing.T) {
	_, err := Import(context.Background(), NewMemoryStore(), Matches, []json.RawMessage{
		json.RawMessage(`{"matchTitle":"no id"}`),
	})
	assert.ErrorContains(t, err, "missing _id")
}

func TestPostgresDSN(t *testing.T) {
	cfg := PostgresConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss", DBName: "skillswap", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss@db:5432/skillswap?sslmode=disable", cfg.DSN())
}
