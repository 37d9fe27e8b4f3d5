// Package jobs provides scheduled background tasks for the sales system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the service.
//
// # Available Jobs
//
// 1. DailySalesReportJob - Runs every morning at 06:00 to compute and log the
// previous day's sales summary.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(getSalesReportHandler, logger)
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
// A day with no confirmed orders is an expected outcome, not a failure; the
// report job logs it at info level. All other errors are logged as errors.
package jobs
