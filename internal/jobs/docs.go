// Package jobs provides scheduled background tasks for the ordering service.
//
// Jobs are built on github.com/robfig/cron/v3 with second precision and are
// owned by a JobManager:
//
//	manager := jobs.NewJobManager(
//		jobs.NewLateOrderJob(&notifyLateOrders, cfg.LateOrderSchedule, logger),
//	)
//	if err := manager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer manager.StopAll()
//
// # Available Jobs
//
// LateOrderJob runs NotifyLateOrders every minute by default. Failures are
// logged and the check simply runs again on the next tick.
package jobs
