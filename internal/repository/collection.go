package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"skillswap/exchange-service/internal/storage"
)

// collection decodes the documents of one store collection into T.
type collection[T any] struct {
	store storage.Store
	name  string
}

func newCollection[T any](store storage.Store, name string) collection[T] {
	return collection[T]{store: store, name: name}
}

func (c collection[T]) all(ctx context.Context) ([]*T, error) {
	docs, err := c.store.GetAll(ctx, c.name)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", c.name, err)
	}
	out := make([]*T, 0, len(docs))
	for _, doc := range docs {
		var rec T
		if err := json.Unmarshal(doc, &rec); err != nil {
			return nil, fmt.Errorf("decode %s record: %w", c.name, err)
		}
		out = append(out, &rec)
	}
	return out, nil
}

func (c collection[T]) byID(ctx context.Context, id string) (*T, error) {
	doc, err := c.store.GetByID(ctx, c.name, id)
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", c.name, id, err)
	}
	var rec T
	if err := json.Unmarshal(doc, &rec); err != nil {
		return nil, fmt.Errorf("decode %s/%s: %w", c.name, id, err)
	}
	return &rec, nil
}

func (c collection[T]) create(ctx context.Context, id string, rec *T) error {
	doc, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", c.name, id, err)
	}
	if err := c.store.Create(ctx, c.name, id, doc); err != nil {
		return fmt.Errorf("create %s/%s: %w", c.name, id, err)
	}
	return nil
}

func (c collection[T]) update(ctx context.Context, id string, patch any) error {
	doc, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("encode %s/%s patch: %w", c.name, id, err)
	}
	if err := c.store.Update(ctx, c.name, id, doc); err != nil {
		return fmt.Errorf("update %s/%s: %w", c.name, id, err)
	}
	return nil
}

// updateIf applies patch only while field still equals want.
func (c collection[T]) updateIf(ctx context.Context, id, field, want string, patch any) error {
	doc, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("encode %s/%s patch: %w", c.name, id, err)
	}
	if err := c.store.UpdateIf(ctx, c.name, id, field, want, doc); err != nil {
		return fmt.Errorf("update %s/%s: %w", c.name, id, err)
	}
	return nil
}

func (c collection[T]) delete(ctx context.Context, id string) error {
	if err := c.store.Delete(ctx, c.name, id); err != nil {
		return fmt.Errorf("delete %s/%s: %w", c.name, id, err)
	}
	return nil
}
