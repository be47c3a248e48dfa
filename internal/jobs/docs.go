// Package jobs provides scheduled background tasks for the ledger.
//
// Jobs are cron based (github.com/robfig/cron/v3, six-field expressions with
// seconds) and only read from the ledger.
//
// # Available Jobs
//
// DelayedShipmentMonitorJob runs the delayed shipments report, publishes the
// count as the ledger_delayed_shipments gauge and logs the worst offenders.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(delayedHandler, m, "0 */5 * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// An empty schedule disables the monitor.
package jobs
