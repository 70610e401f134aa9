package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"skillswap/exchange-service/internal/cache"
)

// ReadMostly lists the collections that are written outside this service and read on
// almost every page. Chat collections change every few seconds and are never cached.
var ReadMostly = []string{Matches, Skills, Locations, SkillListings, UserProfiles}

// CachedStore serves GetAll and GetByID for selected collections from a cache and
// drops the cached entries of a collection on any write to it. Cache failures fall
// through to the underlying store.
type CachedStore struct {
	Store
	cache       cache.Cache
	ttl         time.Duration
	collections map[string]struct{}
	logger      *logrus.Logger
}

func NewCachedStore(inner Store, c cache.Cache, ttl time.Duration, collections []string, logger *logrus.Logger) *CachedStore {
	set := make(map[string]struct{}, len(collections))
	for _, name := range collections {
		set[name] = struct{}{}
	}
	return &CachedStore{
		Store:       inner,
		cache:       c,
		ttl:         ttl,
		collections: set,
		logger:      logger,
	}
}

func allKey(collection string) string {
	return collection + ":all"
}

func idKey(collection, id string) string {
	return collection + ":id:" + id
}

func (s *CachedStore) cached(collection string) bool {
	_, ok := s.collections[collection]
	return ok
}

func (s *CachedStore) GetAll(ctx context.Context, collection string) ([]json.RawMessage, error) {
	if !s.cached(collection) {
		return s.Store.GetAll(ctx, collection)
	}

	key := allKey(collection)
	if raw, err := s.cache.Get(ctx, key); err == nil {
		var docs []json.RawMessage
		if err := json.Unmarshal(raw, &docs); err == nil {
			return docs, nil
		}
	} else if !errors.Is(err, cache.ErrMiss) {
		s.logger.WithError(err).WithField("collection", collection).Warn("Cache read failed")
	}

	docs, err := s.Store.GetAll(ctx, collection)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(docs); err == nil {
		s.set(ctx, key, raw)
	}
	return docs, nil
}

func (s *CachedStore) GetByID(ctx context.Context, collection, id string) (json.RawMessage, error) {
	if !s.cached(collection) {
		return s.Store.GetByID(ctx, collection, id)
	}

	key := idKey(collection, id)
	if raw, err := s.cache.Get(ctx, key); err == nil {
		return json.RawMessage(raw), nil
	} else if !errors.Is(err, cache.ErrMiss) {
		s.logger.WithError(err).WithField("collection", collection).Warn("Cache read failed")
	}

	doc, err := s.Store.GetByID(ctx, collection, id)
	if err != nil {
		return nil, err
	}
	s.set(ctx, key, doc)
	return doc, nil
}

func (s *CachedStore) Create(ctx context.Context, collection, id string, doc json.RawMessage) error {
	if err := s.Store.Create(ctx, collection, id, doc); err != nil {
		return err
	}
	s.invalidate(ctx, collection, id)
	return nil
}

func (s *CachedStore) Update(ctx context.Context, collection, id string, patch json.RawMessage) error {
	if err := s.Store.Update(ctx, collection, id, patch); err != nil {
		return err
	}
	s.invalidate(ctx, collection, id)
	return nil
}

func (s *CachedStore) UpdateIf(ctx context.Context, collection, id, field, want string, patch json.RawMessage) error {
	if err := s.Store.UpdateIf(ctx, collection, id, field, want, patch); err != nil {
		return err
	}
	s.invalidate(ctx, collection, id)
	return nil
}

func (s *CachedStore) Delete(ctx context.Context, collection, id string) error {
	if err := s.Store.Delete(ctx, collection, id); err != nil {
		return err
	}
	s.invalidate(ctx, collection, id)
	return nil
}

func (s *CachedStore) Close() error {
	cacheErr := s.cache.Close()
	if err := s.Store.Close(); err != nil {
		return err
	}
	return cacheErr
}

func (s *CachedStore) set(ctx context.Context, key string, value []byte) {
	if err := s.cache.Set(ctx, key, value, s.ttl); err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("Cache write failed")
	}
}

func (s *CachedStore) invalidate(ctx context.Context, collection, id string) {
	if !s.cached(collection) {
		return
	}
	if err := s.cache.Del(ctx, allKey(collection), idKey(collection, id)); err != nil {
		s.logger.WithError(err).WithField("collection", collection).Warn("Cache invalidation failed")
	}
}
