// Package jobs provides scheduled background tasks for the ordering service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// PaymentTimeoutJob cancels orders that are still Pending after the configured
// payment timeout. Each pass runs CancelExpiredOrdersCommand with the cutoff
// now - timeout, which records "payment timeout" as the failure message.
//
// # Usage
//
//	paymentTimeoutJob := jobs.NewPaymentTimeoutJob(handler, jobs.DefaultPaymentTimeoutSchedule, 15*time.Minute, logger)
//	jobManager := jobs.NewJobManager(paymentTimeoutJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the six-field cron format with a leading seconds field, because the
// schedulers are created with cron.WithSeconds().
//
// # Error Handling
//
// A failed pass is logged and the next tick tries again. Failed job starts stop any
// already running jobs.
package jobs
