package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"ordermgmt/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleDraftCancellationJob *StaleDraftCancellationJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	cancelStaleDraftsHandler commands.CancelStaleDraftsCommandHandler,
	staleDraftMaxAge time.Duration,
	staleDraftSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleDraftCancellationJob: NewStaleDraftCancellationJob(
			cancelStaleDraftsHandler, staleDraftMaxAge, staleDraftSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.staleDraftCancellationJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale draft cancellation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleDraftCancellationJob.Stop()
}
