// Package jobs provides scheduled background sweeps for the marketplace.
//
// Jobs are cron-based (github.com/robfig/cron/v3, seconds field enabled) and
// each run is a sequence of independent per-order commands, so a sweep never
// holds a lock longer than one order takes.
//
// # Available Jobs
//
// 1. DispatchSweepJob - auto-assigns delivery orders that are ready for shipping
// 2. CompletionSweepJob - completes delivered orders once the grace period has passed
//
// # Usage
//
//	jobManager := jobs.NewJobManager(
//		jobs.NewDispatchSweepJob(assignPendingHandler, dispatchMetrics, dispatchOpts, logger),
//		jobs.NewCompletionSweepJob(completeDeliveredHandler, dispatchMetrics, completionOpts, grace, logger),
//	)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A run never stops the schedule: failures are logged and reported to the
// SweepObserver, and the next tick starts a fresh sweep.
package jobs
