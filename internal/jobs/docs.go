// Package jobs provides scheduled background tasks for the shop service.
//
// Jobs are built on github.com/robfig/cron/v3 with second-level schedules.
//
// # Available Jobs
//
// DatabasePingJob pings the datastore on a schedule (every 10 seconds by
// default) and records the outcome in a health.Probe, so /health answers
// from the last known state instead of hitting the database per request.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(logger,
//		jobs.NewDatabasePingJob(sqlDB, probe, "*/10 * * * * *", 2*time.Second, logger),
//	)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Ping failures are logged and recorded as unhealthy; the job keeps running.
// A job whose schedule cannot be parsed fails StartAll and stops the jobs
// already started.
package jobs
