// Package jobs provides scheduled background tasks for the order routing
// engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for branch workflow processing.
//
// # Available Jobs
//
// 1. WorkstationAssignmentJob - Drains the received-order queue by assigning
// each order to the least-loaded inspection workstation at its processing
// branch.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(assignReceivedOrderHandler, "* * * * * *", logger)
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
// The schedule is a six-field cron expression taken from configuration; the
// default "* * * * * *" runs the sweep every second so orders leave the
// received queue as soon as a workstation has capacity.
//
// # Error Handling
//
// An empty received queue is treated as an idle tick. Any other error is
// logged and the sweep retries on the next tick; a single stuck order cannot
// block the schedule.
package jobs
