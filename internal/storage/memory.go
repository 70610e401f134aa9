package storage

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore keeps collections in process memory. Records are returned in insertion order.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]*memoryCollection
}

type memoryCollection struct {
	order []string
	docs  map[string]json.RawMessage
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]*memoryCollection)}
}

func (s *MemoryStore) GetAll(ctx context.Context, collection string) ([]json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c := s.collections[collection]
	if c == nil {
		return []json.RawMessage{}, nil
	}
	out := make([]json.RawMessage, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, clone(c.docs[id]))
	}
	return out, nil
}

func (s *MemoryStore) GetByID(ctx context.Context, collection, id string) (json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c := s.collections[collection]
	if c == nil {
		return nil, ErrNotFound
	}
	doc, ok := c.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(doc), nil
}

func (s *MemoryStore) Create(ctx context.Context, collection, id string, doc json.RawMessage) error {
	if err := validateObject(doc); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.collections[collection]
	if c == nil {
		c = &memoryCollection{docs: make(map[string]json.RawMessage)}
		s.collections[collection] = c
	}
	if _, ok := c.docs[id]; ok {
		return ErrAlreadyExists
	}
	c.docs[id] = clone(doc)
	c.order = append(c.order, id)
	return nil
}

func (s *MemoryStore) Update(ctx context.Context, collection, id string, patch json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.collections[collection]
	if c == nil {
		return ErrNotFound
	}
	doc, ok := c.docs[id]
	if !ok {
		return ErrNotFound
	}
	merged, err := mergeDocument(doc, patch)
	if err != nil {
		return err
	}
	c.docs[id] = merged
	return nil
}

func (s *MemoryStore) UpdateIf(ctx context.Context, collection, id, field, want string, patch json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.collections[collection]
	if c == nil {
		return ErrNotFound
	}
	doc, ok := c.docs[id]
	if !ok {
		return ErrNotFound
	}
	match, err := fieldEquals(doc, field, want)
	if err != nil {
		return err
	}
	if !match {
		return ErrConflict
	}
	merged, err := mergeDocument(doc, patch)
	if err != nil {
		return err
	}
	c.docs[id] = merged
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.collections[collection]
	if c == nil {
		return ErrNotFound
	}
	if _, ok := c.docs[id]; !ok {
		return ErrNotFound
	}
	delete(c.docs, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

func clone(doc json.RawMessage) json.RawMessage {
	out := make(json.RawMessage, len(doc))
	copy(out, doc)
	return out
}
