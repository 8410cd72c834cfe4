package refresh

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/five82/weatherframe/internal/state"
	"github.com/five82/weatherframe/internal/taskqueue"
	"github.com/five82/weatherframe/internal/weather"
)

const defaultWorkers = 2

// Fetcher produces a snapshot. It runs on a worker goroutine and must only
// read immutable inputs.
type Fetcher interface {
	Fetch(ctx context.Context) (weather.Snapshot, error)
}

// Presenter renders a completed snapshot. It is only called on the
// interactive loop. Failures are never presented.
type Presenter interface {
	RenderCurrent(current weather.Current)
	RenderForecast(days []weather.ForecastDay)
}

// Trigger drives the recurring ConsiderRefresh cadence.
type Trigger interface {
	// Arm ensures consider keeps being scheduled. Repeated calls are no-ops.
	Arm(consider func())
	// Stop cancels future scheduling.
	Stop()
}

// Config wires a Scheduler.
type Config struct {
	Fetcher   Fetcher
	Queue     *taskqueue.Queue
	Presenter Presenter
	Trigger   Trigger
	Interval  time.Duration    // backoff base; zero uses DefaultInterval
	Workers   int              // worker pool size; zero uses 2
	Now       func() time.Time // clock; nil uses time.Now
}

// Scheduler decides when to refresh, runs fetches off the interactive loop,
// and records their outcomes back on it.
//
// ConsiderRefresh, Start, Shutdown and State must be called from the
// interactive loop. Outcomes come back through the task queue, so the
// RefreshState is never touched by a worker.
type Scheduler struct {
	fetcher   Fetcher
	queue     *taskqueue.Queue
	presenter Presenter
	trigger   Trigger
	interval  time.Duration
	now       func() time.Time
	workers   *semaphore.Weighted

	ctx     context.Context
	cancel  context.CancelFunc
	started time.Time

	state      state.RefreshState
	dispatches int
	stopped    bool
}

// New builds a Scheduler. Fetches run under ctx; Shutdown cancels it.
func New(ctx context.Context, cfg Config) (*Scheduler, error) {
	if cfg.Fetcher == nil {
		return nil, errors.New("refresh: fetcher is required")
	}
	if cfg.Queue == nil {
		return nil, errors.New("refresh: task queue is required")
	}
	if cfg.Presenter == nil {
		return nil, errors.New("refresh: presenter is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	runCtx, cancel := context.WithCancel(ctx)
	return &Scheduler{
		fetcher:   cfg.Fetcher,
		queue:     cfg.Queue,
		presenter: cfg.Presenter,
		trigger:   cfg.Trigger,
		interval:  interval,
		now:       now,
		workers:   semaphore.NewWeighted(int64(workers)),
		ctx:       runCtx,
		cancel:    cancel,
		started:   now(),
	}, nil
}

// Start arms the recurring trigger.
func (s *Scheduler) Start() {
	s.arm()
}

// ConsiderRefresh dispatches a fetch unless one is already in flight or the
// backoff wait since the last success has not elapsed. It never blocks and
// reports whether a fetch was dispatched.
func (s *Scheduler) ConsiderRefresh() bool {
	if s.stopped || s.state.InFlight {
		return false
	}

	if failures := s.state.ConsecutiveFailures; failures > 0 {
		wait := Backoff(failures, s.interval)
		if elapsed := s.sinceLastSuccess(); elapsed < wait {
			slog.Debug("refresh deferred by backoff",
				"failures", failures,
				"wait", wait,
				"remaining", wait-elapsed)
			return false
		}
	}

	if !s.workers.TryAcquire(1) {
		slog.Warn("refresh skipped: no free worker")
		return false
	}

	s.state.BeginFetch()
	s.dispatches++
	go s.work(s.ctx)
	return true
}

// State returns a copy of the refresh bookkeeping.
func (s *Scheduler) State() state.RefreshState {
	return s.state
}

// NextAttemptIn reports how long until the backoff gate opens, or 0 when a
// refresh would be allowed now.
func (s *Scheduler) NextAttemptIn() time.Duration {
	failures := s.state.ConsecutiveFailures
	if failures == 0 {
		return 0
	}
	remaining := Backoff(failures, s.interval) - s.sinceLastSuccess()
	return max(remaining, 0)
}

// sinceLastSuccess is measured from construction until the first success.
func (s *Scheduler) sinceLastSuccess() time.Duration {
	since := s.state.LastSuccess
	if since.IsZero() {
		since = s.started
	}
	return s.now().Sub(since)
}

// Shutdown stops scheduling, cancels in-flight work on a best-effort basis and
// closes the task queue so late outcomes are dropped. It does not wait for
// workers. Safe to call more than once.
func (s *Scheduler) Shutdown() {
	if s.stopped {
		return
	}
	s.stopped = true
	if s.trigger != nil {
		s.trigger.Stop()
	}
	s.cancel()
	s.queue.Close()
	slog.Info("refresh scheduler stopped", "in_flight", s.state.InFlight)
}

func (s *Scheduler) work(ctx context.Context) {
	defer s.workers.Release(1)

	outcome := s.fetch(ctx)
	if !s.queue.Push(func() { s.record(outcome) }) {
		slog.Debug("refresh outcome discarded after shutdown", "kind", outcome.Kind.String())
	}
}

func (s *Scheduler) fetch(ctx context.Context) (outcome FetchOutcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = FatalFailure(fmt.Errorf("fetcher panicked: %v", r))
		}
	}()

	snap, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return TransientFailure(err)
	}
	return Success(snap)
}

// record applies an outcome on the interactive loop.
func (s *Scheduler) record(outcome FetchOutcome) {
	defer s.arm()

	now := s.now()
	if !outcome.Failed() {
		s.presenter.RenderCurrent(outcome.Snapshot.Current)
		s.presenter.RenderForecast(outcome.Snapshot.Forecast)
		s.state.RecordSuccess(now)
		slog.Info("weather refreshed",
			"city", outcome.Snapshot.Current.City,
			"forecast_days", len(outcome.Snapshot.Forecast))
		return
	}

	s.state.RecordFailure(now, outcome.Err)
	failures := s.state.ConsecutiveFailures
	attrs := []any{
		"failures", failures,
		"next_wait", Backoff(failures, s.interval),
		"err", outcome.Message(),
	}

	switch {
	case outcome.Kind == OutcomeFatal:
		slog.Error("weather refresh failed", attrs...)
	case outcome.Class == ClassDNS:
		slog.Error("weather refresh failed: name resolution", append(attrs, "class", outcome.Class.String())...)
	default:
		slog.Warn("weather refresh failed", append(attrs, "class", outcome.Class.String())...)
	}
}

func (s *Scheduler) arm() {
	if s.stopped || s.trigger == nil {
		return
	}
	s.trigger.Arm(func() { s.ConsiderRefresh() })
}
