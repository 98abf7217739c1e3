// Package sched provides the small scheduling primitives the signal drivers
// run on: a fixed-interval repeater and a cancelable one-shot. Drivers use
// these to poll presence and to decay nudge intensity without touching the
// render loop.
package sched

import (
	"sync"
	"sync/atomic"
	"time"
)

// Repeater invokes a function at a fixed interval on its own goroutine
// until stopped. Stop is idempotent and waits for the worker to exit
type Repeater struct {
	interval time.Duration
	fn       func()

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewRepeater creates a repeater; Start must be called to begin ticking
func NewRepeater(interval time.Duration, fn func()) *Repeater {
	return &Repeater{
		interval: interval,
		fn:       fn,
		stopChan: make(chan struct{}),
	}
}

// Start launches the worker goroutine. Calling Start twice is a no-op
func (r *Repeater) Start() {
	if !r.running.CompareAndSwap(false, true) {
		return
	}
	r.wg.Add(1)
	go r.run()
}

func (r *Repeater) run() {
	defer r.wg.Done()
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.fn()
		case <-r.stopChan:
			return
		}
	}
}

// Stop cancels the repeater and blocks until the worker has exited. The
// callback never fires after Stop returns
func (r *Repeater) Stop() {
	r.stopOnce.Do(func() {
		close(r.stopChan)
	})
	r.wg.Wait()
	r.running.Store(false)
}

// Running reports whether the worker is active
func (r *Repeater) Running() bool {
	return r.running.Load()
}

// Token cancels a pending one-shot task
type Token struct {
	timer   *time.Timer
	stopped atomic.Bool
}

// Cancel prevents the task from firing if it has not already run
func (t *Token) Cancel() {
	if t.stopped.CompareAndSwap(false, true) {
		t.timer.Stop()
	}
}

// After schedules fn once after d and returns a cancellation token
func After(d time.Duration, fn func()) *Token {
	t := &Token{}
	t.timer = time.AfterFunc(d, func() {
		if t.stopped.CompareAndSwap(false, true) {
			fn()
		}
	})
	return t
}
