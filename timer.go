package pace

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

type timerState int

const (
	timerArmed timerState = iota
	timerFired
	timerCancelled
)

// Timer is a cancellable, refreshable single-shot timer. It invokes its
// callback at most once, and never after Cancel has returned.
//
// The zero value is not usable; create timers with [NewTimer].
type Timer struct {
	mu     sync.Mutex
	d      time.Duration
	t      clockwork.Timer
	state  timerState
	onFire func()
}

// NewTimer arms a timer that invokes onFire once after d elapses, unless
// cancelled first. onFire runs on its own goroutine.
func NewTimer(d time.Duration, onFire func(), opts ...Option) *Timer {
	cfg := newConfig(opts)
	tm := &Timer{d: d, onFire: onFire}
	tm.t = cfg.clock.AfterFunc(d, tm.fire)
	return tm
}

func (tm *Timer) fire() {
	tm.mu.Lock()
	if tm.state != timerArmed {
		tm.mu.Unlock()
		return
	}
	tm.state = timerFired
	tm.mu.Unlock()
	tm.onFire()
}

// Refresh resets the remaining wait back to the full duration. It reports
// whether the timer was still armed; after firing or cancellation it is a
// no-op and returns false.
func (tm *Timer) Refresh() bool {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	if tm.state != timerArmed {
		return false
	}
	tm.t.Reset(tm.d)
	return true
}

// Cancel permanently disarms the timer and releases the underlying
// scheduling resource. Once Cancel returns true, onFire will not run, even
// if the deadline elapsed concurrently. It reports whether the timer was
// still armed.
func (tm *Timer) Cancel() bool {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	if tm.state != timerArmed {
		return false
	}
	tm.state = timerCancelled
	tm.t.Stop()
	return true
}
