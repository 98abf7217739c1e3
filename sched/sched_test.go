package sched

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestRepeaterFires(t *testing.T) {
	var count atomic.Int64
	r := NewRepeater(5*time.Millisecond, func() { count.Add(1) })
	r.Start()
	defer r.Stop()

	deadline := time.After(2 * time.Second)
	for count.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("repeater fired %d times in 2s, want >= 3", count.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestRepeaterStopsCleanly(t *testing.T) {
	var count atomic.Int64
	r := NewRepeater(time.Millisecond, func() { count.Add(1) })
	r.Start()
	time.Sleep(20 * time.Millisecond)
	r.Stop()

	after := count.Load()
	time.Sleep(20 * time.Millisecond)
	if count.Load() != after {
		t.Error("callback fired after Stop returned")
	}
	if r.Running() {
		t.Error("repeater reports running after Stop")
	}
}

func TestRepeaterDoubleStartStop(t *testing.T) {
	r := NewRepeater(time.Millisecond, func() {})
	r.Start()
	r.Start() // no-op
	r.Stop()
	r.Stop() // idempotent
}

func TestAfterFires(t *testing.T) {
	done := make(chan struct{})
	After(time.Millisecond, func() { close(done) })
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("one-shot never fired")
	}
}

func TestAfterCancel(t *testing.T) {
	var fired atomic.Bool
	tok := After(30*time.Millisecond, func() { fired.Store(true) })
	tok.Cancel()
	time.Sleep(60 * time.Millisecond)
	if fired.Load() {
		t.Error("canceled one-shot still fired")
	}
	tok.Cancel() // idempotent
}
