// Package memory provides an in-process store.Store used in tests and
// for running the service without a Redis backend.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/theankitdev/yogivibes/internal/store"
)

type collection struct {
	order []string                  // insertion order of document IDs
	docs  map[string]map[string]any // ID -> fields
}

// Store keeps documents per collection in insertion order.
//
// It honors the same contract as the remote store: no transactions,
// no uniqueness constraints, each call independently atomic. Tests
// rely on that to seed duplicate rows the real store could contain.
type Store struct {
	mu          sync.RWMutex
	collections map[string]*collection

	failure     error // when set, every call fails with it
	deleteCalls int
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{collections: make(map[string]*collection)}
}

// List returns documents matching all filters, in insertion order.
func (s *Store) List(ctx context.Context, name string, filters ...store.Filter) ([]store.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.failure != nil {
		return nil, s.failure
	}

	col, ok := s.collections[name]
	if !ok {
		return []store.Document{}, nil
	}

	docs := make([]store.Document, 0, len(col.order))
	for _, id := range col.order {
		doc := store.Document{ID: id, Fields: copyFields(col.docs[id])}
		if store.Matches(doc, filters) {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

// Get retrieves a single document by ID.
func (s *Store) Get(ctx context.Context, name, id string) (store.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.failure != nil {
		return store.Document{}, s.failure
	}

	col, ok := s.collections[name]
	if !ok {
		return store.Document{}, fmt.Errorf("%s/%s: %w", name, id, store.ErrNotFound)
	}
	fields, ok := col.docs[id]
	if !ok {
		return store.Document{}, fmt.Errorf("%s/%s: %w", name, id, store.ErrNotFound)
	}
	return store.Document{ID: id, Fields: copyFields(fields)}, nil
}

// Create stores a new document. An empty id gets a generated one.
// An existing id is overwritten in place, keeping its position.
func (s *Store) Create(ctx context.Context, name, id string, fields map[string]any) (store.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failure != nil {
		return store.Document{}, s.failure
	}

	if id == "" {
		id = uuid.NewString()
	}

	col, ok := s.collections[name]
	if !ok {
		col = &collection{docs: make(map[string]map[string]any)}
		s.collections[name] = col
	}
	if _, exists := col.docs[id]; !exists {
		col.order = append(col.order, id)
	}
	col.docs[id] = copyFields(fields)

	return store.Document{ID: id, Fields: copyFields(fields)}, nil
}

// Delete removes a document by ID.
func (s *Store) Delete(ctx context.Context, name, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deleteCalls++

	if s.failure != nil {
		return s.failure
	}

	col, ok := s.collections[name]
	if !ok {
		return fmt.Errorf("%s/%s: %w", name, id, store.ErrNotFound)
	}
	if _, exists := col.docs[id]; !exists {
		return fmt.Errorf("%s/%s: %w", name, id, store.ErrNotFound)
	}
	delete(col.docs, id)
	for i, existing := range col.order {
		if existing == id {
			col.order = append(col.order[:i], col.order[i+1:]...)
			break
		}
	}
	return nil
}

// Count returns the number of documents in a collection.
func (s *Store) Count(name string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	col, ok := s.collections[name]
	if !ok {
		return 0
	}
	return len(col.order)
}

// DeleteCalls returns how many Delete calls have been issued,
// including ones that failed.
func (s *Store) DeleteCalls() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.deleteCalls
}

// SetFailure makes every subsequent call fail with err until called
// again with nil. Used to simulate store outages.
func (s *Store) SetFailure(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failure = err
}

func copyFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out
}
