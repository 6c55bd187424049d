// Package store defines the remote document collection contract the
// rest of the application is written against. Each call is
// independently atomic; sequences of calls are not, and there is no
// transaction or compound-unique-index support. Callers that need
// stronger guarantees (e.g. the bookmarks repository) must build them
// on top.
package store

import "context"

// Document is a raw record from a collection. Field values are
// whatever was written; callers unmarshal into their own types.
type Document struct {
	ID     string
	Fields map[string]any
}

// Op is a filter comparison operator.
type Op string

const (
	// OpEqual matches documents whose field equals the filter value.
	OpEqual Op = "eq"
)

// Filter narrows a List call to documents matching a field predicate.
type Filter struct {
	Field string
	Op    Op
	Value any
}

// Equal builds an equality filter.
func Equal(field string, value any) Filter {
	return Filter{Field: field, Op: OpEqual, Value: value}
}

// Store is a remote document collection client.
//
// List returns documents in insertion order; the order is stable
// across calls with no intervening writes. Create with an empty id
// lets the store assign one. Get and Delete fail with ErrNotFound
// when the document is absent.
type Store interface {
	List(ctx context.Context, collection string, filters ...Filter) ([]Document, error)
	Get(ctx context.Context, collection, id string) (Document, error)
	Create(ctx context.Context, collection, id string, fields map[string]any) (Document, error)
	Delete(ctx context.Context, collection, id string) error
}

// Collection names used by the application. These mirror the remote
// database layout; the store itself is collection-agnostic.
const (
	CollectionVideos    = "videos"
	CollectionBookmarks = "bookmarks"
)

// Matches reports whether doc satisfies every filter. Implementations
// without server-side filtering apply this after fetching.
func Matches(doc Document, filters []Filter) bool {
	for _, f := range filters {
		switch f.Op {
		case OpEqual:
			if doc.Fields[f.Field] != f.Value {
				return false
			}
		default:
			return false
		}
	}
	return true
}
