package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Refresher re-reads subscribed collections and pushes changed snapshots.
// Implemented by the PostgreSQL document store.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// SnapshotRefreshJob polls the document store for changes made by other
// processes. Runs every second; local commits publish immediately and do not
// depend on this job.
type SnapshotRefreshJob struct {
	refresher Refresher
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewSnapshotRefreshJob creates a new job driving the given refresher.
func NewSnapshotRefreshJob(refresher Refresher, logger *slog.Logger) *SnapshotRefreshJob {
	return &SnapshotRefreshJob{
		refresher: refresher,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "snapshot_refresh_job"),
	}
}

// Start begins the refresh job to run every second.
func (j *SnapshotRefreshJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		if err := j.refresher.Refresh(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Snapshot refresh job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Snapshot refresh job started (running every second)")
	return nil
}

// Stop stops the refresh job.
func (j *SnapshotRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Snapshot refresh job stopped")
}
