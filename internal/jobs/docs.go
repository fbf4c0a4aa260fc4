// Package jobs provides scheduled background tasks for the booking system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the marketplace.
//
// # Available Jobs
//
// 1. AssignmentRetryJob - Runs every 30 seconds to re-run the assignment
// engine for bookings whose items still lack a partner
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(unassignedHandler, assignHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// An assignment pass that leaves an item unassigned is an expected business
// scenario, not a job failure: the engine logs it and the sweep retries on
// the next tick. Only infrastructure errors surface in the job log.
package jobs
