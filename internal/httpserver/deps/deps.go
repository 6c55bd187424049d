package deps

import (
	"time"

	"github.com/theankitdev/yogivibes/internal/favorites"
	"github.com/theankitdev/yogivibes/internal/logger"
)

type Deps struct {
	Logger        logger.Logger
	StartTime     time.Time
	Version       string
	Commit        string
	BuildDate     string
	GoVersion     string
	TimeNow       func() time.Time // for testing, defaults to time.Now
	Favorites     *favorites.Cache // favorite-state cache over the bookmarks repository
	ReloadTrigger chan struct{}    // Channel to trigger a manual catalog reload
}
