package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
	// ErrConflict is returned by UpdateIf when the guarded field no longer holds the expected value.
	ErrConflict = errors.New("record changed concurrently")
)

// Collection names, as used by the content backend.
const (
	Conversations           = "chatconversations"
	Messages                = "chatmessages"
	ContactExchangeRequests = "contactexchangerequests"
	UserProfiles            = "userprofiles"
	Skills                  = "skills"
	Matches                 = "aiskillmatches"
	ContactSubmissions      = "contactsubmissions"
	Locations               = "locations"
	SkillListings           = "skilllistings"
	OnboardingStates        = "onboardingstates"
)

// Store is a schemaless document store addressed by collection name and record id.
// Documents are JSON objects. No filtering or pagination is offered: callers fetch
// a whole collection and filter in memory.
type Store interface {
	GetAll(ctx context.Context, collection string) ([]json.RawMessage, error)
	// GetByID returns ErrNotFound when the id does not resolve.
	GetByID(ctx context.Context, collection, id string) (json.RawMessage, error)
	// Create returns ErrAlreadyExists when the id is taken.
	Create(ctx context.Context, collection, id string, doc json.RawMessage) error
	// Update merges the top-level fields of patch into the stored document.
	Update(ctx context.Context, collection, id string, patch json.RawMessage) error
	// UpdateIf is Update guarded by the string value of one top-level field. The check
	// and the write happen atomically; a mismatch returns ErrConflict.
	UpdateIf(ctx context.Context, collection, id, field, want string, patch json.RawMessage) error
	Delete(ctx context.Context, collection, id string) error
	Close() error
}

const idField = "_id"

// mergeDocument overlays the top-level fields of patch onto base. The record id never changes.
func mergeDocument(base, patch json.RawMessage) (json.RawMessage, error) {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(base, &fields); err != nil {
		return nil, fmt.Errorf("decode stored document: %w", err)
	}
	overlay := map[string]json.RawMessage{}
	if err := json.Unmarshal(patch, &overlay); err != nil {
		return nil, fmt.Errorf("decode patch: %w", err)
	}
	for k, v := range overlay {
		if k == idField {
			continue
		}
		fields[k] = v
	}
	return json.Marshal(fields)
}

// fieldEquals reports whether the top-level field of doc is the JSON string want.
func fieldEquals(doc json.RawMessage, field, want string) (bool, error) {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(doc, &fields); err != nil {
		return false, fmt.Errorf("decode stored document: %w", err)
	}
	raw, ok := fields[field]
	if !ok {
		return false, nil
	}
	var got string
	if err := json.Unmarshal(raw, &got); err != nil {
		return false, nil
	}
	return got == want, nil
}

// stripID removes _id from a patch so backends that merge natively cannot rewrite it.
func stripID(patch json.RawMessage) (json.RawMessage, error) {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(patch, &fields); err != nil {
		return nil, fmt.Errorf("decode patch: %w", err)
	}
	delete(fields, idField)
	return json.Marshal(fields)
}

func validateObject(doc json.RawMessage) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(doc, &fields); err != nil {
		return fmt.Errorf("document must be a JSON object: %w", err)
	}
	return nil
}
