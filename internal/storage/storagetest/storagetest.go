// Package storagetest holds helpers for tests that run against a storage.Store.
package storagetest

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"skillswap/exchange-service/internal/storage"
)

// ErrInjected is the default failure returned by FaultyStore.
var ErrInjected = errors.New("injected storage failure")

type Op string

const (
	OpGetAll  Op = "getAll"
	OpGetByID Op = "getById"
	OpCreate  Op = "create"
	OpUpdate  Op = "update"
	OpDelete  Op = "delete"
)

type faultKey struct {
	op         Op
	collection string
}

// FaultyStore wraps a store and fails selected operations on demand.
type FaultyStore struct {
	storage.Store

	mu     sync.Mutex
	faults map[faultKey]error
	calls  map[faultKey]int
}

func NewFaultyStore(inner storage.Store) *FaultyStore {
	return &FaultyStore{
		Store:  inner,
		faults: make(map[faultKey]error),
		calls:  make(map[faultKey]int),
	}
}

// Fail makes op on collection return err (ErrInjected when err is nil) until Heal is called.
func (s *FaultyStore) Fail(op Op, collection string, err error) {
	if err == nil {
		err = ErrInjected
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faults[faultKey{op, collection}] = err
}

func (s *FaultyStore) Heal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faults = make(map[faultKey]error)
}

// Calls reports how many times op was invoked on collection, failed or not.
func (s *FaultyStore) Calls(op Op, collection string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[faultKey{op, collection}]
}

func (s *FaultyStore) check(op Op, collection string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := faultKey{op, collection}
	s.calls[key]++
	return s.faults[key]
}

func (s *FaultyStore) GetAll(ctx context.Context, collection string) ([]json.RawMessage, error) {
	if err := s.check(OpGetAll, collection); err != nil {
		return nil, err
	}
	return s.Store.GetAll(ctx, collection)
}

func (s *FaultyStore) GetByID(ctx context.Context, collection, id string) (json.RawMessage, error) {
	if err := s.check(OpGetByID, collection); err != nil {
		return nil, err
	}
	return s.Store.GetByID(ctx, collection, id)
}

func (s *FaultyStore) Create(ctx context.Context, collection, id string, doc json.RawMessage) error {
	if err := s.check(OpCreate, collection); err != nil {
		return err
	}
	return s.Store.Create(ctx, collection, id, doc)
}

func (s *FaultyStore) Update(ctx context.Context, collection, id string, patch json.RawMessage) error {
	if err := s.check(OpUpdate, collection); err != nil {
		return err
	}
	return s.Store.Update(ctx, collection, id, patch)
}

// UpdateIf shares the OpUpdate fault with Update.
func (s *FaultyStore) UpdateIf(ctx context.Context, collection, id, field, want string, patch json.RawMessage) error {
	if err := s.check(OpUpdate, collection); err != nil {
		return err
	}
	return s.Store.UpdateIf(ctx, collection, id, field, want, patch)
}

func (s *FaultyStore) Delete(ctx context.Context, collection, id string) error {
	if err := s.check(OpDelete, collection); err != nil {
		return err
	}
	return s.Store.Delete(ctx, collection, id)
}

// Seed writes records into collection. Each record must marshal to an object with an "_id".
func Seed(t testing.TB, store storage.Store, collection string, records ...any) {
	t.Helper()
	for _, rec := range records {
		doc, err := json.Marshal(rec)
		if err != nil {
			t.Fatalf("marshal seed record: %v", err)
		}
		var head struct {
			ID string `json:"_id"`
		}
		if err := json.Unmarshal(doc, &head); err != nil || head.ID == "" {
			t.Fatalf("seed record in %s has no _id", collection)
		}
		if err := store.Create(context.Background(), collection, head.ID, doc); err != nil {
			t.Fatalf("seed %s/%s: %v", collection, head.ID, err)
		}
	}
}
