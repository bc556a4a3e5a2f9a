// Package jobs provides scheduled background tasks for the order and route
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the service.
//
// # Available Jobs
//
// 1. DriverRosterJob - Periodically refreshes the cached driver roster from
// the route backend so the route selection screen answers without an upstream
// round trip.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	cache := jobs.NewRosterCache(routeBackend)
//	jobManager := jobs.NewJobManager(cache, "0 */5 * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed refresh keeps the previous roster; the cache falls through to the
// backend when it has never been filled.
package jobs
