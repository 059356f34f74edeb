package navigation

import (
	"sync"
	"time"
)

// Scheduler defers work onto the UI thread.
type Scheduler interface {
	// AfterFunc runs fn on the UI thread once d has elapsed.
	AfterFunc(d time.Duration, fn func())
}

// MainQueue is a Scheduler whose callbacks run when the UI loop calls Drain.
// Timers fire on their own goroutines and only enqueue; nothing queued ever
// runs off the goroutine that drains.
type MainQueue struct {
	mu      sync.Mutex
	pending []func()
	timers  map[*time.Timer]struct{}
	closed  bool
}

// NewMainQueue creates an empty queue.
func NewMainQueue() *MainQueue {
	return &MainQueue{
		timers: make(map[*time.Timer]struct{}),
	}
}

// Post enqueues fn to run on the next Drain.
func (q *MainQueue) Post(fn func()) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.pending = append(q.pending, fn)
}

// AfterFunc enqueues fn once d has elapsed.
func (q *MainQueue) AfterFunc(d time.Duration, fn func()) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}

	var timer *time.Timer
	timer = time.AfterFunc(d, func() {
		q.mu.Lock()
		delete(q.timers, timer)
		if !q.closed {
			q.pending = append(q.pending, fn)
		}
		q.mu.Unlock()
	})
	q.timers[timer] = struct{}{}
}

// Drain runs every queued callback in order and returns how many ran.
// Callbacks queued while draining wait for the next call.
func (q *MainQueue) Drain() int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

// Pending reports how many callbacks are queued or waiting on a timer.
func (q *MainQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending) + len(q.timers)
}

// Close stops outstanding timers and discards queued callbacks.
func (q *MainQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	for timer := range q.timers {
		timer.Stop()
	}
	q.timers = make(map[*time.Timer]struct{})
	q.pending = nil
}
