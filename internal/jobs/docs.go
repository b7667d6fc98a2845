// Package jobs provides scheduled background tasks for the courier system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the dispatch service.
//
// # Available Jobs
//
// 1. PackageDispatchJob - Runs every five seconds to assign the oldest pending
// package to the least loaded available driver
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dispatchHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The dispatch job uses the cron expression "*/5 * * * * *" which means it
// runs every five seconds. One pending package is dispatched per tick, so a
// backlog drains gradually instead of reassigning the whole queue at once.
//
// # Error Handling
//
// - The dispatch job ignores expected business errors (no pending packages,
// no available drivers)
// - Failed job starts will stop any already running jobs
package jobs
