// Package jobs provides scheduled background tasks for the order lifecycle
// engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations the engine requires.
//
// # Available Jobs
//
// 1. SnapshotRefreshJob - Runs every second to re-read subscribed collections
// from the PostgreSQL document store and push changed snapshots to live-query
// subscribers. PostgreSQL has no native change feed, so this job is what
// surfaces writes made by other processes. The in-memory store publishes on
// commit and does not need it.
//
// All jobs follow the same lifecycle: create with their dependencies, Start
// to begin the schedule, Stop for a graceful shutdown. JobManager bundles
// them behind a single StartAll/StopAll pair for the composition root.
package jobs
