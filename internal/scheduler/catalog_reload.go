package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/theankitdev/yogivibes/internal/logger"
	"github.com/theankitdev/yogivibes/internal/sources/catalog"
	"github.com/theankitdev/yogivibes/internal/store"
)

// CatalogReloader handles periodic reloading of the video catalog
// into the document store.
type CatalogReloader struct {
	loader        *catalog.Loader
	mapper        *catalog.Mapper
	store         store.Store
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewCatalogReloader creates a new catalog reloader.
func NewCatalogReloader(
	catalogFile string,
	st store.Store,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *CatalogReloader {
	return &CatalogReloader{
		loader:        catalog.NewLoader(catalogFile),
		mapper:        catalog.NewMapper(),
		store:         st,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start loads the catalog immediately, then keeps it refreshed on the
// configured interval or on a manual trigger.
func (cr *CatalogReloader) Start(ctx context.Context) error {
	if err := cr.Reload(ctx); err != nil {
		return fmt.Errorf("initial catalog reload failed: %w", err)
	}

	ticker := time.NewTicker(cr.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := cr.Reload(ctx); err != nil {
					cr.logger.Error("failed to reload catalog",
						logger.Error(err))
				}
			case <-cr.manualTrigger:
				cr.logger.Info("manual catalog reload triggered")
				if err := cr.Reload(ctx); err != nil {
					cr.logger.Error("failed to reload catalog",
						logger.Error(err))
				}
			case <-cr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reloader.
func (cr *CatalogReloader) Stop() {
	close(cr.stopCh)
}

// Reload loads the catalog file and upserts every video into the
// videos collection. Existing documents keep their position, so the
// listing order stays stable across reloads.
func (cr *CatalogReloader) Reload(ctx context.Context) error {
	cr.logger.Info("reloading video catalog")

	config, err := cr.loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	videos, dropped, err := cr.mapper.MapVideos(config)
	if err != nil {
		return fmt.Errorf("failed to map catalog: %w", err)
	}
	if dropped > 0 {
		cr.logger.Warn("dropped invalid catalog entries",
			logger.Int("dropped", dropped))
	}

	for _, v := range videos {
		_, err := cr.store.Create(ctx, store.CollectionVideos, v.ID, map[string]any{
			"title":      v.Title,
			"thumbnail":  v.Thumbnail,
			"video":      v.VideoURL,
			"prompt":     v.Prompt,
			"creator":    v.CreatorID,
			"created_at": v.CreatedAt.Format(time.RFC3339Nano),
		})
		if err != nil {
			return fmt.Errorf("failed to store video %s: %w", v.ID, err)
		}
	}

	cr.logger.Info("video catalog loaded",
		logger.Int("count", len(videos)))
	return nil
}
