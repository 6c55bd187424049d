package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/theankitdev/yogivibes/internal/domain"
	"github.com/theankitdev/yogivibes/internal/httpserver/deps"
	"github.com/theankitdev/yogivibes/internal/logger"
	"github.com/theankitdev/yogivibes/internal/store"
)

type favoritesResponse struct {
	Videos []domain.Video `json:"videos"`
	Count  int            `json:"count"`
}

// ListFavorites loads a user's bookmarked videos, optionally narrowed
// by a live title query. The load always hits the store (full cache
// refresh); the query runs over the freshly loaded snapshot only.
func ListFavorites(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID := strings.TrimSpace(r.URL.Query().Get("user"))
		if userID == "" {
			writeError(w, fmt.Errorf("user query parameter: %w", store.ErrInvalidArgument))
			return
		}
		query := strings.TrimSpace(r.URL.Query().Get("q"))

		videos, err := d.Favorites.Load(ctx, userID)
		if err != nil {
			d.Logger.Error("failed to load favorites",
				logger.String("user_id", userID),
				logger.Error(err))
			writeError(w, err)
			return
		}

		if query != "" {
			videos = d.Favorites.Search(userID, query)
			d.Logger.Debug("filtered favorites",
				logger.String("user_id", userID),
				logger.String("query", query),
				logger.Int("matches", len(videos)))
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(favoritesResponse{
			Videos: videos,
			Count:  len(videos),
		})
	}
}
