package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	snapshotRefreshJob *SnapshotRefreshJob
}

// NewJobManager creates a new job manager. The refresher may be nil when the
// configured store publishes changes on commit; in that case no refresh job
// is scheduled.
func NewJobManager(refresher Refresher, logger *slog.Logger) *JobManager {
	jm := &JobManager{}
	if refresher != nil {
		jm.snapshotRefreshJob = NewSnapshotRefreshJob(refresher, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.snapshotRefreshJob == nil {
		return nil
	}
	if err := jm.snapshotRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start snapshot refresh job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.snapshotRefreshJob != nil {
		jm.snapshotRefreshJob.Stop()
	}
}
