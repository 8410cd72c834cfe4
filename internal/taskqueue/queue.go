// Package taskqueue hands work from background goroutines to the interactive
// loop.
//
// Any goroutine may Push; only the interactive loop calls DrainAll, on its
// own cadence. The queue is unbounded and FIFO. A task that panics is
// recovered and logged so the rest of the drain still runs.
package taskqueue

import (
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
)

// Task is an action to run on the interactive loop.
type Task func()

// Queue is a multi-producer, single-consumer task queue. The zero value is
// ready to use.
type Queue struct {
	mu     sync.Mutex
	tasks  []Task
	closed bool
}

// New returns an empty queue.
func New() *Queue {
	return &Queue{}
}

// Push appends task without blocking. It reports false when the task was
// dropped because it is nil or the queue is closed.
func (q *Queue) Push(task Task) bool {
	if task == nil {
		return false
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return false
	}
	q.tasks = append(q.tasks, task)
	return true
}

// DrainAll runs every task queued when the drain starts, in push order, and
// returns how many ran. Tasks pushed while draining wait for the next drain.
func (q *Queue) DrainAll() int {
	q.mu.Lock()
	batch := q.tasks
	q.tasks = nil
	q.mu.Unlock()

	for i, task := range batch {
		runTask(task)
		batch[i] = nil
	}
	return len(batch)
}

// Len returns the number of queued tasks.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

// Close discards queued tasks and rejects further pushes.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	q.tasks = nil
}

// Closed reports whether Close has been called.
func (q *Queue) Closed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}

func runTask(task Task) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("ui task panicked",
				"panic", fmt.Sprint(r),
				"stack", string(debug.Stack()))
		}
	}()
	task()
}
