// Package bookmarks owns the favorite relationship between users and
// videos, with guarantees the underlying document store does not
// provide natively: idempotent creation, defensive duplicate cleanup
// and resolution of bookmark rows into full video records.
package bookmarks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/theankitdev/yogivibes/internal/domain"
	"github.com/theankitdev/yogivibes/internal/logger"
	"github.com/theankitdev/yogivibes/internal/store"
)

const (
	fieldUserID    = "user_id"
	fieldVideoID   = "video_id"
	fieldCreatedAt = "created_at"
)

// Repository performs all reads and writes of the favorite relation.
// It holds no mutable state, so it is safe to share across sessions.
type Repository struct {
	store  store.Store
	logger logger.Logger
}

// NewRepository creates a bookmark repository over the given store.
func NewRepository(st store.Store, log logger.Logger) *Repository {
	return &Repository{store: st, logger: log}
}

// IsFavorited reports whether userID has bookmarked videoID.
// A store failure is returned as-is: callers must not confuse
// "unknown" with "not favorited".
func (r *Repository) IsFavorited(ctx context.Context, userID, videoID string) (bool, error) {
	if err := validateIDs(userID, videoID); err != nil {
		return false, err
	}

	docs, err := r.findBookmarks(ctx, userID, videoID)
	if err != nil {
		return false, err
	}
	return len(docs) > 0, nil
}

// AddFavorite records that userID has bookmarked videoID.
//
// The operation is idempotent in effect: when a bookmark for the pair
// already exists it is returned unchanged instead of creating a
// duplicate. The lookup and the create are two separate store calls,
// so two concurrent adds for the same pair can still race; see
// Repository.RemoveFavorite for the cleanup side of that trade-off.
func (r *Repository) AddFavorite(ctx context.Context, userID, videoID string) (*domain.Bookmark, error) {
	if err := validateIDs(userID, videoID); err != nil {
		return nil, err
	}

	docs, err := r.findBookmarks(ctx, userID, videoID)
	if err != nil {
		return nil, err
	}
	if len(docs) > 0 {
		existing := bookmarkFromDoc(docs[0])
		return &existing, nil
	}

	now := time.Now().UTC()
	doc, err := r.store.Create(ctx, store.CollectionBookmarks, "", map[string]any{
		fieldUserID:    userID,
		fieldVideoID:   videoID,
		fieldCreatedAt: now.Format(time.RFC3339Nano),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create bookmark: %w", err)
	}

	bookmark := bookmarkFromDoc(doc)
	return &bookmark, nil
}

// RemoveFavorite deletes every bookmark for (userID, videoID).
//
// Returns false without issuing any delete when no bookmark exists;
// removing a non-existent favorite is not a fault. When bookmarks are
// found, all of them are deleted so duplicates left behind by the
// add race cannot accumulate. A NotFound from an individual delete
// means someone else already removed it and is ignored.
func (r *Repository) RemoveFavorite(ctx context.Context, userID, videoID string) (bool, error) {
	if err := validateIDs(userID, videoID); err != nil {
		return false, err
	}

	docs, err := r.findBookmarks(ctx, userID, videoID)
	if err != nil {
		return false, err
	}
	if len(docs) == 0 {
		return false, nil
	}

	if len(docs) > 1 {
		r.logger.Warn("removing duplicate bookmarks",
			logger.String("user_id", userID),
			logger.String("video_id", videoID),
			logger.Int("count", len(docs)))
	}

	for _, doc := range docs {
		if err := r.store.Delete(ctx, store.CollectionBookmarks, doc.ID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			return false, fmt.Errorf("failed to delete bookmark %s: %w", doc.ID, err)
		}
	}
	return true, nil
}

// ListFavoriteVideos resolves every bookmark of userID into its video,
// in bookmark insertion order. Bookmarks whose video no longer exists
// are skipped; the skip count is returned for diagnostics instead of
// failing the whole listing.
func (r *Repository) ListFavoriteVideos(ctx context.Context, userID string) ([]domain.Video, int, error) {
	if userID == "" {
		return nil, 0, fmt.Errorf("user id: %w", store.ErrInvalidArgument)
	}

	docs, err := r.store.List(ctx, store.CollectionBookmarks, store.Equal(fieldUserID, userID))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookmarks: %w", err)
	}

	videos := make([]domain.Video, 0, len(docs))
	seen := make(map[string]bool, len(docs))
	skipped := 0
	for _, doc := range docs {
		bookmark := bookmarkFromDoc(doc)
		if seen[bookmark.VideoID] {
			// Duplicate rows resolve to the same video once.
			continue
		}
		seen[bookmark.VideoID] = true

		videoDoc, err := r.store.Get(ctx, store.CollectionVideos, bookmark.VideoID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				skipped++
				continue
			}
			return nil, skipped, fmt.Errorf("failed to resolve video %s: %w", bookmark.VideoID, err)
		}
		videos = append(videos, VideoFromDoc(videoDoc))
	}

	if skipped > 0 {
		r.logger.Warn("skipped bookmarks referencing missing videos",
			logger.String("user_id", userID),
			logger.Int("skipped", skipped))
	}
	return videos, skipped, nil
}

func (r *Repository) findBookmarks(ctx context.Context, userID, videoID string) ([]store.Document, error) {
	docs, err := r.store.List(ctx, store.CollectionBookmarks,
		store.Equal(fieldUserID, userID),
		store.Equal(fieldVideoID, videoID))
	if err != nil {
		return nil, fmt.Errorf("failed to query bookmarks: %w", err)
	}
	return docs, nil
}

func validateIDs(userID, videoID string) error {
	if userID == "" {
		return fmt.Errorf("user id: %w", store.ErrInvalidArgument)
	}
	if videoID == "" {
		return fmt.Errorf("video id: %w", store.ErrInvalidArgument)
	}
	return nil
}

func bookmarkFromDoc(doc store.Document) domain.Bookmark {
	return domain.Bookmark{
		ID:        doc.ID,
		UserID:    stringField(doc, fieldUserID),
		VideoID:   stringField(doc, fieldVideoID),
		CreatedAt: timeField(doc, fieldCreatedAt),
	}
}

// VideoFromDoc decodes a video document into its domain type.
// Unknown or missing fields decode to zero values; the favorites core
// only depends on ID and Title.
func VideoFromDoc(doc store.Document) domain.Video {
	return domain.Video{
		ID:        doc.ID,
		Title:     stringField(doc, "title"),
		Thumbnail: stringField(doc, "thumbnail"),
		VideoURL:  stringField(doc, "video"),
		Prompt:    stringField(doc, "prompt"),
		CreatorID: stringField(doc, "creator"),
		CreatedAt: timeField(doc, "created_at"),
	}
}

func stringField(doc store.Document, field string) string {
	s, _ := doc.Fields[field].(string)
	return s
}

func timeField(doc store.Document, field string) time.Time {
	s, ok := doc.Fields[field].(string)
	if !ok {
		return time.Time{}
	}
	ts, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return ts
}
