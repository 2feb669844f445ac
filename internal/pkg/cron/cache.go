package cron

import (
	"context"
	"log/slog"
	"time"
)

// Purger is implemented by every cache.Cache instance
type Purger interface {
	Purge() int
}

// CacheJobs drops expired cache entries so unread keys do not pile up
type CacheJobs struct {
	caches map[string]Purger
}

func NewCacheJobs(caches map[string]Purger) *CacheJobs {
	return &CacheJobs{caches: caches}
}

func (j *CacheJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("purge_expired_cache", 1*time.Minute, j.PurgeExpired)
}

func (j *CacheJobs) PurgeExpired(ctx context.Context) error {
	for name, c := range j.caches {
		if err := ctx.Err(); err != nil {
			return err
		}
		if removed := c.Purge(); removed > 0 {
			slog.Debug("Cron: Expired cache entries purged", "cache", name, "removed", removed)
		}
	}
	return nil
}
