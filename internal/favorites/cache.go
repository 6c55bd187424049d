// Package favorites keeps a per-user projection of bookmark state so
// the presentation layer gets instant answers without a remote round
// trip on every read. The store remains the durable truth: the cache
// is rebuilt from it on every Load and must never survive a restart.
package favorites

import (
	"context"
	"sync"

	"github.com/theankitdev/yogivibes/internal/domain"
	"github.com/theankitdev/yogivibes/internal/logger"
)

// repository captures the subset of the bookmarks repository the
// cache needs.
type repository interface {
	AddFavorite(ctx context.Context, userID, videoID string) (*domain.Bookmark, error)
	RemoveFavorite(ctx context.Context, userID, videoID string) (bool, error)
	ListFavoriteVideos(ctx context.Context, userID string) ([]domain.Video, int, error)
}

// userState is one user's cached projection.
type userState struct {
	videos []domain.Video  // last fully-loaded snapshot, replaced wholesale
	flags  map[string]bool // videoID -> believed membership

	nextGen    uint64 // generation handed to the most recent load
	appliedGen uint64 // generation of the snapshot currently applied
}

// Cache tracks believed favorite membership per user.
//
// Membership flags flip only after the corresponding remote call has
// succeeded, so the cache lags the store by one round trip but is
// never silently wrong. Readers always see a fully-formed snapshot;
// updates replace it wholesale rather than mutating in place.
type Cache struct {
	repo   repository
	logger logger.Logger

	mu      sync.RWMutex
	users   map[string]*userState
	toggles map[string]*sync.Mutex // per (user, video) toggle serialization
}

// NewCache creates a favorites cache over the given repository.
func NewCache(repo repository, log logger.Logger) *Cache {
	return &Cache{
		repo:    repo,
		logger:  log,
		users:   make(map[string]*userState),
		toggles: make(map[string]*sync.Mutex),
	}
}

// Load fetches the user's favorites from the repository and replaces
// the cached snapshot and flags with the result.
//
// Loads are last-request-wins: when two loads for the same user are
// in flight, only the result of the newest issued one is applied, so
// a slow stale response cannot clobber fresher state. The fetched
// videos are returned even when the snapshot commit was discarded.
func (c *Cache) Load(ctx context.Context, userID string) ([]domain.Video, error) {
	gen := c.beginLoad(userID)

	videos, skipped, err := c.repo.ListFavoriteVideos(ctx, userID)
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		c.logger.Debug("favorites load skipped dangling bookmarks",
			logger.String("user_id", userID),
			logger.Int("skipped", skipped))
	}

	if !c.commitLoad(userID, gen, videos) {
		c.logger.Debug("discarding stale favorites load",
			logger.String("user_id", userID))
	}
	return videos, nil
}

// Refresh forces a full Load, discarding any cached flags.
func (c *Cache) Refresh(ctx context.Context, userID string) error {
	_, err := c.Load(ctx, userID)
	return err
}

// Toggle flips the favorite state of (userID, videoID) and returns
// the new membership state.
//
// The cached flag (false when unknown) decides whether to add or
// remove; it is flipped only after the repository call succeeds. On
// error the flag is left untouched and the error is surfaced for the
// caller's retry decision. Toggles for the same pair are serialized
// so a double-tap cannot interleave two check-then-act sequences.
func (c *Cache) Toggle(ctx context.Context, userID, videoID string) (bool, error) {
	lock := c.toggleLock(userID + "\x00" + videoID)
	lock.Lock()
	defer lock.Unlock()

	if c.IsFavorited(userID, videoID) {
		if _, err := c.repo.RemoveFavorite(ctx, userID, videoID); err != nil {
			return true, err
		}
		c.setFlag(userID, videoID, false)
		return false, nil
	}

	if _, err := c.repo.AddFavorite(ctx, userID, videoID); err != nil {
		return false, err
	}
	c.setFlag(userID, videoID, true)
	return true, nil
}

// IsFavorited returns the believed membership state for one video.
func (c *Cache) IsFavorited(userID, videoID string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	state, ok := c.users[userID]
	if !ok {
		return false
	}
	return state.flags[videoID]
}

// Search filters the last-loaded snapshot by title. It is pure over
// cached state and never touches the store.
func (c *Cache) Search(userID, query string) []domain.Video {
	c.mu.RLock()
	state, ok := c.users[userID]
	var snapshot []domain.Video
	if ok {
		snapshot = state.videos
	}
	c.mu.RUnlock()

	return domain.FilterByTitle(snapshot, query)
}

func (c *Cache) beginLoad(userID string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := c.stateLocked(userID)
	state.nextGen++
	return state.nextGen
}

// commitLoad applies a load result unless a newer load already
// committed. Returns false when the result was discarded.
func (c *Cache) commitLoad(userID string, gen uint64, videos []domain.Video) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := c.stateLocked(userID)
	if gen <= state.appliedGen {
		return false
	}
	state.appliedGen = gen

	flags := make(map[string]bool, len(videos))
	for _, v := range videos {
		flags[v.ID] = true
	}
	state.videos = videos
	state.flags = flags
	return true
}

func (c *Cache) setFlag(userID, videoID string, favorited bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := c.stateLocked(userID)
	if favorited {
		state.flags[videoID] = true
		return
	}
	delete(state.flags, videoID)
}

func (c *Cache) stateLocked(userID string) *userState {
	state, ok := c.users[userID]
	if !ok {
		state = &userState{flags: make(map[string]bool)}
		c.users[userID] = state
	}
	return state
}

func (c *Cache) toggleLock(key string) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()

	lock, ok := c.toggles[key]
	if !ok {
		lock = &sync.Mutex{}
		c.toggles[key] = lock
	}
	return lock
}
