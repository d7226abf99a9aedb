package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"ordermgmt/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleDraftOperator is the operator identity recorded on automatic
// cancellations, so audit entries distinguish them from user actions.
const StaleDraftOperator = "system"

// StaleDraftCancellationJob periodically cancels orders that were left in
// draft status longer than the configured age.
type StaleDraftCancellationJob struct {
	handler  commands.CancelStaleDraftsCommandHandler
	maxAge   time.Duration
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStaleDraftCancellationJob creates a job that sweeps stale drafts on the
// given cron schedule (six-field expression, with seconds).
func NewStaleDraftCancellationJob(
	handler commands.CancelStaleDraftsCommandHandler,
	maxAge time.Duration,
	schedule string,
	logger *slog.Logger,
) *StaleDraftCancellationJob {
	return &StaleDraftCancellationJob{
		handler:  handler,
		maxAge:   maxAge,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "stale_draft_cancellation_job"),
	}
}

// Start begins the periodic sweep.
func (j *StaleDraftCancellationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewCancelStaleDraftsCommand(j.maxAge, StaleDraftOperator)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale draft cancellation command invalid", "error", err)
			return
		}

		if err = j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoStaleDraftOrders) {
				j.logger.ErrorContext(ctx, "Stale draft cancellation job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale draft cancellation job started",
		"schedule", j.schedule, "max_age", j.maxAge.String())
	return nil
}

// Stop stops the job.
func (j *StaleDraftCancellationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale draft cancellation job stopped")
}
