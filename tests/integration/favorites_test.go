package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/theankitdev/yogivibes/internal/bookmarks"
	"github.com/theankitdev/yogivibes/internal/domain"
	"github.com/theankitdev/yogivibes/internal/favorites"
	"github.com/theankitdev/yogivibes/internal/httpserver/deps"
	"github.com/theankitdev/yogivibes/internal/httpserver/routes"
	"github.com/theankitdev/yogivibes/internal/logger"
	"github.com/theankitdev/yogivibes/internal/store"
	"github.com/theankitdev/yogivibes/internal/store/memory"
)

func newStack(t *testing.T) (*favorites.Cache, *memory.Store) {
	t.Helper()
	st := memory.New()
	log := logger.New("error", false)
	return favorites.NewCache(bookmarks.NewRepository(st, log), log), st
}

func seedVideo(t *testing.T, st *memory.Store, id, title string) {
	t.Helper()
	_, err := st.Create(context.Background(), store.CollectionVideos, id, map[string]any{"title": title})
	require.NoError(t, err)
}

// TestFavoriteLifecycle walks the full favorite/load/unfavorite/load
// sequence a user session produces.
func TestFavoriteLifecycle(t *testing.T) {
	cache, st := newStack(t)
	ctx := context.Background()

	seedVideo(t, st, "v-a", "Sunrise Flow")
	seedVideo(t, st, "v-b", "Deep Stretch")

	// A prior favorite that must survive the whole scenario.
	state, err := cache.Toggle(ctx, "u1", "v-b")
	require.NoError(t, err)
	require.True(t, state)

	// Favorite A.
	state, err = cache.Toggle(ctx, "u1", "v-a")
	require.NoError(t, err)
	require.True(t, state)

	// Load: both favorites appear, in bookmark insertion order.
	videos, err := cache.Load(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, []string{"v-b", "v-a"}, videoIDs(videos))

	// Unfavorite A.
	state, err = cache.Toggle(ctx, "u1", "v-a")
	require.NoError(t, err)
	require.False(t, state)

	// Load: only the prior favorite remains.
	videos, err = cache.Load(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, []string{"v-b"}, videoIDs(videos))
}

func TestDoubleToggleRestoresState(t *testing.T) {
	cache, st := newStack(t)
	ctx := context.Background()

	seedVideo(t, st, "v1", "Morning Flow")

	state, err := cache.Toggle(ctx, "u1", "v1")
	require.NoError(t, err)
	require.True(t, state)

	state, err = cache.Toggle(ctx, "u1", "v1")
	require.NoError(t, err)
	require.False(t, state)

	require.Zero(t, st.Count(store.CollectionBookmarks))
}

func videoIDs(videos []domain.Video) []string {
	ids := make([]string, 0, len(videos))
	for _, v := range videos {
		ids = append(ids, v.ID)
	}
	return ids
}

// newTestServer wires the real routes over an in-memory stack.
func newTestServer(t *testing.T) (*httptest.Server, *memory.Store) {
	t.Helper()
	cache, st := newStack(t)

	r := chi.NewRouter()
	routes.RegisterAll(r, deps.Deps{
		Logger:    logger.New("error", false),
		StartTime: time.Now(),
		TimeNow:   time.Now,
		Favorites: cache,
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, st
}

func TestFavoritesAPI(t *testing.T) {
	srv, st := newTestServer(t)
	seedVideo(t, st, "v1", "Morning Flow")
	seedVideo(t, st, "v2", "Evening Stretch")

	toggle := func(user, video string) map[string]any {
		t.Helper()
		body, _ := json.Marshal(map[string]string{"user": user, "video": video})
		resp, err := http.Post(srv.URL+"/api/favorites/toggle", "application/json", bytes.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		return out
	}

	list := func(query string) map[string]any {
		t.Helper()
		url := srv.URL + "/api/favorites?user=u1"
		if query != "" {
			url += "&q=" + query
		}
		resp, err := http.Get(url)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		return out
	}

	require.Equal(t, true, toggle("u1", "v1")["isFavorited"])
	require.Equal(t, true, toggle("u1", "v2")["isFavorited"])

	all := list("")
	require.EqualValues(t, 2, all["count"])

	filtered := list("morning")
	require.EqualValues(t, 1, filtered["count"])

	require.Equal(t, false, toggle("u1", "v1")["isFavorited"])
	require.EqualValues(t, 1, list("")["count"])
}

func TestFavoritesAPIValidation(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/favorites")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body, _ := json.Marshal(map[string]string{"user": "", "video": "v1"})
	resp2, err := http.Post(srv.URL+"/api/favorites/toggle", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp2.StatusCode)
}
