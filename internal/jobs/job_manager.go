package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	driverRosterJob *DriverRosterJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(cache *RosterCache, rosterSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		driverRosterJob: NewDriverRosterJob(cache, rosterSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.driverRosterJob.Start(); err != nil {
		return fmt.Errorf("failed to start driver roster job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.driverRosterJob.Stop()
}
