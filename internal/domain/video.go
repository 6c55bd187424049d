package domain

import "time"

// Video represents a content item eligible for bookmarking.
// Videos are produced by the external content pipeline; the favorites
// core only ever reads them.
type Video struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is the canonical unique identifier assigned by the store.
	ID string `json:"id"`

	// ─────────────────────────────
	// Content
	// ─────────────────────────────

	// Title is the display title, also the search target.
	// Example: "Morning Flow"
	Title string `json:"title"`

	// Thumbnail is the URL of the preview image.
	Thumbnail string `json:"thumbnail"`

	// VideoURL is the URL of the playable media.
	VideoURL string `json:"video"`

	// Prompt is the creator-supplied description prompt.
	Prompt string `json:"prompt"`

	// ─────────────────────────────
	// Provenance
	// ─────────────────────────────

	// CreatorID references the user that published the video.
	CreatorID string `json:"creator"`

	// CreatedAt is when the video entered the catalog.
	CreatedAt time.Time `json:"created_at"`
}
