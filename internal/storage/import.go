package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

type ImportResult struct {
	Created int
	Updated int
}

// Import writes records produced outside the service (for example generated matches)
// into collection. Records are matched by their _id field: new ids are created and
// existing ones are overwritten field by field.
func Import(ctx context.Context, store Store, collection string, records []json.RawMessage) (ImportResult, error) {
	var result ImportResult
	for i, rec := range records {
		var head struct {
			ID string `json:"_id"`
		}
		if err := json.Unmarshal(rec, &head); err != nil {
			return result, fmt.Errorf("record %d: %w", i, err)
		}
		if head.ID == "" {
			return result, fmt.Errorf("record %d: missing %s", i, idField)
		}

		err := store.Create(ctx, collection, head.ID, rec)
		switch {
		case err == nil:
			result.Created++
		case errors.Is(err, ErrAlreadyExists):
			if err := store.Update(ctx, collection, head.ID, rec); err != nil {
				return result, fmt.Errorf("update %s/%s: %w", collection, head.ID, err)
			}
			result.Updated++
		default:
			return result, fmt.Errorf("create %s/%s: %w", collection, head.ID, err)
		}
	}
	return result, nil
}
