// Package jobs provides scheduled background tasks for the hiring system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the recruitment pipeline.
//
// # Available Jobs
//
// 1. OfferExpiryJob - Runs every minute to expire sent offers whose response
// deadline has passed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expireOffersHandler, logger)
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
// The expiry job uses the cron expression "0 * * * * *" which means it runs
// at the start of every minute. Offer deadlines are minute-granular, so a
// tighter schedule would only add load.
//
// # Error Handling
//
// Each expiry batch runs under the retry executor, so transient database
// failures are retried with backoff before the failure is logged. Failed
// job starts will stop any already running jobs.
package jobs
