package redis

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/theankitdev/yogivibes/internal/store"
)

func setupTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewStore(client), mr
}

func TestCreateAndGet(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	doc, err := s.Create(ctx, "videos", "", map[string]any{"title": "Morning Flow"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if doc.ID == "" {
		t.Fatal("expected a generated ID")
	}

	got, err := s.Get(ctx, "videos", doc.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Fields["title"] != "Morning Flow" {
		t.Errorf("title = %v, want Morning Flow", got.Fields["title"])
	}
}

func TestGetNotFound(t *testing.T) {
	s, _ := setupTestStore(t)

	_, err := s.Get(context.Background(), "videos", "missing")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Get error = %v, want ErrNotFound", err)
	}
}

func TestListPreservesInsertionOrder(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"b2", "a1", "c3"} {
		if _, err := s.Create(ctx, "videos", id, map[string]any{"id": id}); err != nil {
			t.Fatalf("Create %s failed: %v", id, err)
		}
	}

	docs, err := s.List(ctx, "videos")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	want := []string{"b2", "a1", "c3"}
	if len(docs) != len(want) {
		t.Fatalf("got %d docs, want %d", len(docs), len(want))
	}
	for i, doc := range docs {
		if doc.ID != want[i] {
			t.Errorf("docs[%d].ID = %s, want %s", i, doc.ID, want[i])
		}
	}
}

func TestListAppliesFilters(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	_, _ = s.Create(ctx, "bookmarks", "1", map[string]any{"user_id": "u1", "video_id": "v1"})
	_, _ = s.Create(ctx, "bookmarks", "2", map[string]any{"user_id": "u2", "video_id": "v1"})
	_, _ = s.Create(ctx, "bookmarks", "3", map[string]any{"user_id": "u1", "video_id": "v2"})

	docs, err := s.List(ctx, "bookmarks", store.Equal("user_id", "u1"))
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(docs) != 2 || docs[0].ID != "1" || docs[1].ID != "3" {
		t.Errorf("got %v, want docs 1 and 3 in order", docs)
	}
}

func TestDelete(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	_, _ = s.Create(ctx, "videos", "v1", map[string]any{"title": "x"})

	if err := s.Delete(ctx, "videos", "v1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := s.Get(ctx, "videos", "v1"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Get after delete = %v, want ErrNotFound", err)
	}

	docs, err := s.List(ctx, "videos")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("got %d docs after delete, want 0", len(docs))
	}

	if err := s.Delete(ctx, "videos", "v1"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("second Delete = %v, want ErrNotFound", err)
	}
}

func TestUnavailableWhenRedisDown(t *testing.T) {
	s, mr := setupTestStore(t)
	mr.Close()

	_, err := s.List(context.Background(), "videos")
	if !errors.Is(err, store.ErrUnavailable) {
		t.Errorf("List error = %v, want ErrUnavailable", err)
	}
}
