package catalog

import (
	"fmt"
	"time"

	"github.com/theankitdev/yogivibes/internal/domain"
)

// Mapper converts catalog config entries to domain videos.
type Mapper struct{}

// NewMapper creates a new catalog mapper.
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapVideos converts a Config to a domain.Video slice. Entries
// without an id or a title are skipped; the returned count reports
// how many were dropped.
func (m *Mapper) MapVideos(config Config) ([]domain.Video, int, error) {
	videos := make([]domain.Video, 0, len(config.Videos))
	now := time.Now().UTC()
	dropped := 0

	for _, entry := range config.Videos {
		if entry.ID == "" || entry.Title == "" {
			dropped++
			continue
		}

		videos = append(videos, domain.Video{
			ID:        entry.ID,
			Title:     entry.Title,
			Thumbnail: entry.Thumbnail,
			VideoURL:  entry.Video,
			Prompt:    entry.Prompt,
			CreatorID: entry.Creator,
			CreatedAt: now,
		})
	}

	if len(videos) == 0 {
		return nil, dropped, fmt.Errorf("no valid videos found in catalog")
	}
	return videos, dropped, nil
}
