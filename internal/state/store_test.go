package state

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestRefreshState_BeginFetchRejectsOverlap(t *testing.T) {
	var s RefreshState

	if !s.BeginFetch() {
		t.Fatal("BeginFetch() = false on idle state, want true")
	}
	if !s.InFlight {
		t.Fatal("InFlight = false after BeginFetch, want true")
	}
	if s.BeginFetch() {
		t.Fatal("BeginFetch() = true while in flight, want false")
	}
}

func TestRefreshState_RecordSuccessResetsFailures(t *testing.T) {
	var s RefreshState
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	s.BeginFetch()
	s.RecordFailure(now, errors.New("timeout"))
	s.BeginFetch()
	s.RecordFailure(now.Add(time.Minute), errors.New("timeout"))
	if s.ConsecutiveFailures != 2 {
		t.Fatalf("ConsecutiveFailures = %d, want 2", s.ConsecutiveFailures)
	}

	s.BeginFetch()
	s.RecordSuccess(now.Add(2 * time.Minute))
	if s.ConsecutiveFailures != 0 {
		t.Fatalf("ConsecutiveFailures = %d, want 0 after success", s.ConsecutiveFailures)
	}
	if !s.LastSuccess.Equal(now.Add(2 * time.Minute)) {
		t.Fatalf("LastSuccess = %v, want %v", s.LastSuccess, now.Add(2*time.Minute))
	}
	if s.LastError != nil {
		t.Fatalf("LastError = %v, want nil", s.LastError)
	}
	if s.InFlight {
		t.Fatal("InFlight = true after RecordSuccess, want false")
	}
}

func TestRefreshState_RecordFailureKeepsLastSuccess(t *testing.T) {
	var s RefreshState
	ok := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	s.RecordSuccess(ok)

	origErr := errors.New("boom")
	s.BeginFetch()
	s.RecordFailure(ok.Add(5*time.Minute), origErr)

	if !s.LastSuccess.Equal(ok) {
		t.Fatalf("LastSuccess = %v, want %v", s.LastSuccess, ok)
	}
	if s.InFlight {
		t.Fatal("InFlight = true after RecordFailure, want false")
	}
	if s.LastError == nil || s.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", s.LastError)
	}
	if reflect.ValueOf(s.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatal("RecordFailure should wrap the error instance")
	}
	if !errors.Is(s.LastError, origErr) {
		t.Fatal("LastError should still match the recorded error")
	}
}

func TestRefreshState_Stale(t *testing.T) {
	var s RefreshState
	now := time.Now()

	if s.IsStale() {
		t.Fatal("IsStale() = true with 0 failures")
	}
	s.RecordFailure(now, nil)
	if s.IsStale() {
		t.Fatal("IsStale() = true with 1 failure")
	}
	s.RecordFailure(now, nil)
	if !s.IsStale() {
		t.Fatal("IsStale() = false with 2 failures")
	}
	s.RecordSuccess(now)
	if s.IsStale() {
		t.Fatal("IsStale() = true after success")
	}
}
