// Package jobs provides scheduled background tasks for the ordering service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// StaleOrdersJob cancels Pending orders that were placed longer ago than the
// configured TTL. It is disabled when the TTL is zero.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(cancelStaleHandler, jobs.StaleOrdersConfig{
//		TTL:      24 * time.Hour,
//		Schedule: jobs.DefaultStaleOrdersSchedule,
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six-field cron expressions including seconds. The default
// "0 * * * * *" runs once per minute.
//
// # Error Handling
//
// A failed run is logged and retried on the next tick. The whole batch of a run
// is canceled in one transaction, so a failure leaves every order untouched.
package jobs
