// Package refresh decides when the dashboard fetches new weather data and
// carries the results back to the interactive loop.
//
// # Overview
//
// The Scheduler owns a state.RefreshState and is consulted on a fixed
// cadence. Each consultation either dispatches one fetch onto a worker
// goroutine or does nothing. Completed fetches never touch the UI or the
// refresh state directly; they post a closure onto a taskqueue.Queue that the
// interactive loop drains.
//
//	 CronTrigger (gocron)          interactive loop             worker
//	┌───────────────────┐        ┌─────────────────────┐     ┌──────────────┐
//	│ every interval    │ push → │ DrainAll()          │     │              │
//	│                   │        │  └ ConsiderRefresh  │ go →│ Fetch(ctx)   │
//	└───────────────────┘        │                     │     │      ↓       │
//	                             │ DrainAll()          │← push outcome     │
//	                             │  └ record(outcome)  │     └──────────────┘
//	                             │     ├ render        │
//	                             │     └ Arm trigger   │
//	                             └─────────────────────┘
//
// # Gating
//
// ConsiderRefresh skips when:
//   - a fetch is already in flight
//   - the previous attempts failed and the backoff wait has not elapsed
//   - no worker slot is free
//   - the scheduler has been shut down
//
// # Backoff
//
// After n consecutive failures the wait is base·2^(min(n,5)−1), so with the
// default five minute base the sequence is 5m, 10m, 20m, 40m, 80m and stays
// at 80m. The wait is measured from the last success, or from when the
// scheduler was built if nothing has succeeded yet. Backoff is computed with
// cenkalti/backoff with jitter disabled.
//
// # Failures
//
// Every failure takes the same path: the streak grows, the error is logged,
// and the previously rendered data stays on screen. Classify tags errors as
// network, timeout, DNS, status, malformed or circuit open for the log line
// only. A panicking fetcher is recovered and recorded as a fatal outcome.
//
// # Shutdown
//
// Shutdown stops the trigger, cancels the fetch context and closes the task
// queue. It never waits for a worker; an outcome that arrives afterwards is
// discarded by the closed queue.
package refresh
