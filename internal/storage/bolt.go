package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

// BoltStore keeps one bucket per collection in a single bbolt file.
type BoltStore struct {
	db *bolt.DB
}

// OpenBoltStore opens (or creates) the database file at path.
func OpenBoltStore(path string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt store: %w", err)
	}
	return &BoltStore{db: db}, nil
}

// GetAll returns documents in byte order of their ids, not insertion order.
func (s *BoltStore) GetAll(ctx context.Context, collection string) ([]json.RawMessage, error) {
	out := []json.RawMessage{}
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(collection))
		if b == nil {
			return nil
		}
		return b.ForEach(func(_, v []byte) error {
			out = append(out, clone(v))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *BoltStore) GetByID(ctx context.Context, collection, id string) (json.RawMessage, error) {
	var doc json.RawMessage
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(collection))
		if b == nil {
			return ErrNotFound
		}
		v := b.Get([]byte(id))
		if v == nil {
			return ErrNotFound
		}
		// Values are only valid for the life of the transaction.
		doc = clone(v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *BoltStore) Create(ctx context.Context, collection, id string, doc json.RawMessage) error {
	if err := validateObject(doc); err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(collection))
		if err != nil {
			return err
		}
		if b.Get([]byte(id)) != nil {
			return ErrAlreadyExists
		}
		return b.Put([]byte(id), doc)
	})
}

func (s *BoltStore) Update(ctx context.Context, collection, id string, patch json.RawMessage) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(collection))
		if b == nil {
			return ErrNotFound
		}
		current := b.Get([]byte(id))
		if current == nil {
			return ErrNotFound
		}
		merged, err := mergeDocument(current, patch)
		if err != nil {
			return err
		}
		return b.Put([]byte(id), merged)
	})
}

func (s *BoltStore) UpdateIf(ctx context.Context, collection, id, field, want string, patch json.RawMessage) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(collection))
		if b == nil {
			return ErrNotFound
		}
		current := b.Get([]byte(id))
		if current == nil {
			return ErrNotFound
		}
		match, err := fieldEquals(current, field, want)
		if err != nil {
			return err
		}
		if !match {
			return ErrConflict
		}
		merged, err := mergeDocument(current, patch)
		if err != nil {
			return err
		}
		return b.Put([]byte(id), merged)
	})
}

func (s *BoltStore) Delete(ctx context.Context, collection, id string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(collection))
		if b == nil || b.Get([]byte(id)) == nil {
			return ErrNotFound
		}
		return b.Delete([]byte(id))
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
