package state

import (
	"fmt"
	"time"
)

// staleAfter is the number of back-to-back failures after which the data on
// screen is considered stale.
const staleAfter = 2

// RefreshState is the refresh scheduler's bookkeeping. It has a single owner
// (the interactive loop) and is not safe for concurrent use.
type RefreshState struct {
	ConsecutiveFailures int
	LastSuccess         time.Time
	LastFailure         time.Time
	LastError           error
	InFlight            bool
}

// IsStale reports whether the provider has failed repeatedly since the last
// successful refresh.
func (s RefreshState) IsStale() bool {
	return s.ConsecutiveFailures >= staleAfter
}

// BeginFetch marks a fetch as dispatched. It returns false when one is
// already in flight.
func (s *RefreshState) BeginFetch() bool {
	if s.InFlight {
		return false
	}
	s.InFlight = true
	return true
}

// RecordSuccess resets the failure streak and clears the in-flight flag.
func (s *RefreshState) RecordSuccess(now time.Time) {
	s.ConsecutiveFailures = 0
	s.LastSuccess = now
	s.LastError = nil
	s.InFlight = false
}

// RecordFailure extends the failure streak and clears the in-flight flag.
// LastSuccess is left untouched.
func (s *RefreshState) RecordFailure(now time.Time, err error) {
	s.ConsecutiveFailures++
	s.LastFailure = now
	if err != nil {
		s.LastError = fmt.Errorf("%w", err)
	} else {
		s.LastError = nil
	}
	s.InFlight = false
}
