// Package jobs provides scheduled background tasks for the order management
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. StaleDraftCancellationJob - Periodically cancels orders left in draft
// status longer than the configured age. Cancellations go through the same
// transition executor as user-requested ones, so the audit trail and
// concurrency guarantees are identical.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(cancelStaleDraftsHandler, maxAge, schedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The sweep ignores the expected "nothing to cancel" outcome and logs every
// other failure.
package jobs
