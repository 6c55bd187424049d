package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/theankitdev/yogivibes/internal/httpserver/deps"
	"github.com/theankitdev/yogivibes/internal/logger"
	"github.com/theankitdev/yogivibes/internal/store"
)

type toggleRequest struct {
	User  string `json:"user"`
	Video string `json:"video"`
}

type toggleResponse struct {
	IsFavorited bool `json:"isFavorited"`
}

// ToggleFavorite flips the favorite state of one (user, video) pair
// and reports the confirmed new state. On a store failure nothing is
// flipped and the caller gets a retryable error.
func ToggleFavorite(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req toggleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, fmt.Errorf("request body: %w", store.ErrInvalidArgument))
			return
		}
		req.User = strings.TrimSpace(req.User)
		req.Video = strings.TrimSpace(req.Video)

		state, err := d.Favorites.Toggle(ctx, req.User, req.Video)
		if err != nil {
			d.Logger.Error("failed to toggle favorite",
				logger.String("user_id", req.User),
				logger.String("video_id", req.Video),
				logger.Error(err))
			writeError(w, err)
			return
		}

		d.Logger.Info("favorite toggled",
			logger.String("user_id", req.User),
			logger.String("video_id", req.Video),
			logger.Bool("favorited", state))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(toggleResponse{IsFavorited: state})
	}
}
