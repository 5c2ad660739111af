// Package jobs provides scheduled background tasks for the storefront service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order processing.
//
// # Available Jobs
//
// 1. StaleOrderExpiryJob - Runs every minute to cancel orders that have been
// sitting in the created status longer than the configured age limit.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(cancelStaleOrdersHandler, maxOrderAge, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The expiry job cancels each stale order in its own transaction, so an order
// confirmed between the candidate scan and the cancellation is simply skipped.
// Only unexpected errors are logged.
package jobs
