package refresh

import (
	"log/slog"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/five82/weatherframe/internal/taskqueue"
)

// CronTrigger runs ConsiderRefresh on a fixed cadence. The cron job itself
// only pushes onto the task queue, so the scheduler is always consulted from
// the interactive loop.
type CronTrigger struct {
	mu       sync.Mutex
	cron     *gocron.Scheduler
	interval time.Duration
	queue    *taskqueue.Queue
	job      *gocron.Job
	stopped  bool
}

// NewCronTrigger returns a trigger that fires every interval, starting
// immediately on the first Arm.
func NewCronTrigger(interval time.Duration, queue *taskqueue.Queue) *CronTrigger {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &CronTrigger{
		cron:     gocron.NewScheduler(time.Local),
		interval: interval,
		queue:    queue,
	}
}

// Arm registers the recurring job on first use and makes sure the cron
// scheduler is running.
func (t *CronTrigger) Arm(consider func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopped || consider == nil {
		return
	}
	if t.job == nil {
		job, err := t.cron.Every(t.interval).Do(func() {
			t.queue.Push(consider)
		})
		if err != nil {
			slog.Error("schedule refresh job", "err", err)
			return
		}
		t.job = job
	}
	if !t.cron.IsRunning() {
		t.cron.StartAsync()
	}
}

// Stop halts the cron scheduler. Later Arm calls do nothing.
func (t *CronTrigger) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopped {
		return
	}
	t.stopped = true
	if t.cron.IsRunning() {
		t.cron.Stop()
	}
}

// armed reports whether the recurring job is registered.
func (t *CronTrigger) armed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.job != nil && !t.stopped
}
