package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/theankitdev/yogivibes/internal/store"
)

func TestCreateAssignsID(t *testing.T) {
	s := New()
	ctx := context.Background()

	doc, err := s.Create(ctx, "things", "", map[string]any{"name": "a"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if doc.ID == "" {
		t.Error("expected a generated ID")
	}
}

func TestListPreservesInsertionOrder(t *testing.T) {
	s := New()
	ctx := context.Background()

	for _, id := range []string{"c", "a", "b"} {
		if _, err := s.Create(ctx, "things", id, map[string]any{"id": id}); err != nil {
			t.Fatalf("Create %s failed: %v", id, err)
		}
	}

	docs, err := s.List(ctx, "things")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	want := []string{"c", "a", "b"}
	if len(docs) != len(want) {
		t.Fatalf("got %d docs, want %d", len(docs), len(want))
	}
	for i, doc := range docs {
		if doc.ID != want[i] {
			t.Errorf("docs[%d].ID = %s, want %s", i, doc.ID, want[i])
		}
	}
}

func TestListAppliesEqualityFilters(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, _ = s.Create(ctx, "things", "1", map[string]any{"owner": "u1", "kind": "x"})
	_, _ = s.Create(ctx, "things", "2", map[string]any{"owner": "u2", "kind": "x"})
	_, _ = s.Create(ctx, "things", "3", map[string]any{"owner": "u1", "kind": "y"})

	docs, err := s.List(ctx, "things", store.Equal("owner", "u1"), store.Equal("kind", "x"))
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(docs) != 1 || docs[0].ID != "1" {
		t.Errorf("got %v, want exactly doc 1", docs)
	}
}

func TestGetAndDeleteNotFound(t *testing.T) {
	s := New()
	ctx := context.Background()

	if _, err := s.Get(ctx, "things", "nope"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Get error = %v, want ErrNotFound", err)
	}
	if err := s.Delete(ctx, "things", "nope"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Delete error = %v, want ErrNotFound", err)
	}
}

func TestSetFailure(t *testing.T) {
	s := New()
	ctx := context.Background()

	s.SetFailure(store.ErrUnavailable)
	if _, err := s.List(ctx, "things"); !errors.Is(err, store.ErrUnavailable) {
		t.Errorf("List error = %v, want ErrUnavailable", err)
	}

	s.SetFailure(nil)
	if _, err := s.List(ctx, "things"); err != nil {
		t.Errorf("List after clearing failure: %v", err)
	}
}

func TestDocumentsAreCopied(t *testing.T) {
	s := New()
	ctx := context.Background()

	fields := map[string]any{"name": "a"}
	_, _ = s.Create(ctx, "things", "1", fields)
	fields["name"] = "mutated"

	doc, err := s.Get(ctx, "things", "1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if doc.Fields["name"] != "a" {
		t.Errorf("stored document aliased caller map: %v", doc.Fields)
	}
}
