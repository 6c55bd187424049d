// Package redis implements store.Store on top of a Redis instance.
//
// Each document is a JSON blob under its own key; a per-collection
// list keeps document IDs in insertion order so List stays stable.
// Filters are applied client-side after fetching, matching the
// equality sublanguage of store.Filter.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/theankitdev/yogivibes/internal/store"
)

// Store handles Redis operations for document collections.
type Store struct {
	client *goredis.Client
}

// NewStore creates a new Redis-backed document store.
func NewStore(client *goredis.Client) *Store {
	return &Store{client: client}
}

// List returns documents matching all filters, in insertion order.
// Stale IDs whose document key has expired or vanished are skipped.
func (s *Store) List(ctx context.Context, collection string, filters ...store.Filter) ([]store.Document, error) {
	ids, err := s.client.LRange(ctx, IDsKey(collection), 0, -1).Result()
	if err != nil {
		return nil, unavailable("list %s ids", collection, err)
	}

	docs := make([]store.Document, 0, len(ids))
	for _, id := range ids {
		doc, err := s.Get(ctx, collection, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			return nil, err
		}
		if store.Matches(doc, filters) {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

// Get retrieves a document by ID.
func (s *Store) Get(ctx context.Context, collection, id string) (store.Document, error) {
	data, err := s.client.Get(ctx, DocKey(collection, id)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return store.Document{}, fmt.Errorf("%s/%s: %w", collection, id, store.ErrNotFound)
		}
		return store.Document{}, unavailable("get %s", collection+"/"+id, err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return store.Document{}, fmt.Errorf("failed to unmarshal document %s/%s: %w", collection, id, err)
	}
	return store.Document{ID: id, Fields: fields}, nil
}

// Create stores a new document. An empty id gets a generated one.
// An existing id is overwritten in place, keeping its list position.
func (s *Store) Create(ctx context.Context, collection, id string, fields map[string]any) (store.Document, error) {
	if id == "" {
		id = uuid.NewString()
	}

	data, err := json.Marshal(fields)
	if err != nil {
		return store.Document{}, fmt.Errorf("failed to marshal document %s/%s: %w", collection, id, err)
	}

	key := DocKey(collection, id)
	existed, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return store.Document{}, unavailable("check %s", key, err)
	}

	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		return store.Document{}, unavailable("save %s", key, err)
	}
	if existed == 0 {
		if err := s.client.RPush(ctx, IDsKey(collection), id).Err(); err != nil {
			return store.Document{}, unavailable("index %s", key, err)
		}
	}

	return store.Document{ID: id, Fields: fields}, nil
}

// Delete removes a document by ID.
func (s *Store) Delete(ctx context.Context, collection, id string) error {
	key := DocKey(collection, id)

	removed, err := s.client.Del(ctx, key).Result()
	if err != nil {
		return unavailable("delete %s", key, err)
	}
	if removed == 0 {
		return fmt.Errorf("%s/%s: %w", collection, id, store.ErrNotFound)
	}

	if err := s.client.LRem(ctx, IDsKey(collection), 0, id).Err(); err != nil {
		return unavailable("unindex %s", key, err)
	}
	return nil
}

// unavailable tags a transport-level failure so callers can
// distinguish "store down" from "document absent".
func unavailable(format, subject string, err error) error {
	return fmt.Errorf(format+": %w: %v", subject, store.ErrUnavailable, err)
}
