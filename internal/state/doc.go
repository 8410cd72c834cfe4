// Package state holds the bookkeeping the refresh scheduler keeps between
// fetches.
//
// # Overview
//
// RefreshState records the consecutive failure count, the timestamps of the
// last success and the last failure, the last error and whether a fetch is in
// flight. The scheduler reads it to decide whether a new fetch may start and
// how long the backoff wait is.
//
// # Concurrency Model
//
// RefreshState has no lock. It is owned by the interactive loop: workers hand
// their outcome back through the task queue and the scheduler applies it
// there. A copy returned by Scheduler.State is a plain value.
//
// # Update Semantics
//
//	// Success: streak resets, last error cleared
//	st.RecordSuccess(now)
//	→ ConsecutiveFailures = 0
//	→ LastSuccess = now
//	→ InFlight = false
//
//	// Failure: streak grows, rendered data is left alone
//	st.RecordFailure(now, err)
//	→ ConsecutiveFailures++
//	→ LastFailure = now
//	→ LastError = err
//	→ InFlight = false
//
// IsStale reports two or more failures in a row, which the UI uses to dim
// the "updated" timestamp.
package state
