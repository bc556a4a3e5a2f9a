package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// DefaultRosterSchedule refreshes the roster every five minutes.
const DefaultRosterSchedule = "0 */5 * * * *"

// DriverRosterJob manages the scheduled refresh of the driver roster cache.
type DriverRosterJob struct {
	cache    *RosterCache
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDriverRosterJob creates a job refreshing the cache on the cron schedule.
// An empty schedule falls back to DefaultRosterSchedule.
func NewDriverRosterJob(cache *RosterCache, schedule string, logger *slog.Logger) *DriverRosterJob {
	if schedule == "" {
		schedule = DefaultRosterSchedule
	}

	return &DriverRosterJob{
		cache:    cache,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "driver_roster_job"),
	}
}

// Start begins the periodic roster refresh. The cache is warmed once
// immediately; a failed warm-up is logged and left to the next tick.
func (j *DriverRosterJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.cache.Refresh(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Driver roster refresh failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	ctx := context.Background()
	if err := j.cache.Refresh(ctx); err != nil {
		j.logger.WarnContext(ctx, "Initial driver roster fetch failed", "error", err)
	}

	j.cron.Start()
	j.logger.InfoContext(ctx, "Driver roster job started", "schedule", j.schedule)
	return nil
}

// Stop stops the roster refresh job.
func (j *DriverRosterJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Driver roster job stopped")
}
