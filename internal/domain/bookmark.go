package domain

import "time"

// Bookmark is the durable fact "UserID has favorited VideoID".
//
// At most one bookmark should exist per (UserID, VideoID) pair. The
// store does not enforce uniqueness, so the bookmarks repository
// enforces it by construction and cleans up duplicates defensively on
// removal. Bookmarks are never mutated in place.
type Bookmark struct {
	// ID is the store-assigned unique identifier.
	ID string `json:"id"`

	// UserID references the user that owns the bookmark.
	UserID string `json:"user_id"`

	// VideoID references the bookmarked video.
	VideoID string `json:"video_id"`

	// CreatedAt is when the bookmark was created.
	CreatedAt time.Time `json:"created_at"`
}
