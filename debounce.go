package pace

import (
	"sync"
	"time"
)

// Debounce wraps fn with a quiet-period window of length d. The first call
// opens a window: it arms a timer and returns a pending [Result]. Every
// further call while the window is open refreshes the timer — pushing
// execution back to d from now — and returns the same Result. When the
// timer finally fires, the window closes, fn runs once, and its outcome
// settles the shared Result for everyone who called during the window.
//
// The window is closed before the Result settles, so a call made from a
// waiter's continuation opens a fresh window. A delay of zero still defers
// fn to the timer's goroutine; it never runs within the calling turn.
func Debounce[T any](d time.Duration, fn func() (T, error), opts ...Option) func() *Result[T] {
	cfg := newConfig(opts)
	var (
		mu      sync.Mutex
		timer   *Timer
		pending *Result[T]
	)

	fire := func() {
		mu.Lock()
		res := pending
		timer, pending = nil, nil
		mu.Unlock()
		if res == nil {
			// Window was cancelled out from under a racing fire.
			return
		}
		cfg.emit(EventInvoke, "debounce", 0)
		res.settle(fn())
	}

	return func() *Result[T] {
		mu.Lock()
		defer mu.Unlock()
		if pending != nil {
			timer.Refresh()
			cfg.emit(EventCoalesce, "debounce", 0)
			return pending
		}
		pending = newResult[T]()
		timer = NewTimer(d, fire, WithClock(cfg.clock))
		return pending
	}
}

// CancelableDebounce is [Debounce] for a function that takes an argument,
// plus an explicit cancel. The arguments of the most recent call in a
// window are the ones fn receives when the timer fires; earlier calls'
// arguments are discarded.
//
// cancel closes an open window immediately: the timer is disarmed and fn
// will not run for that window. Cancellation is fire-and-forget — the
// pending Result handed to the window's callers is left unsettled forever,
// it is not rejected. Callers that must observe cancellation should select
// on their own context rather than on the Result alone.
func CancelableDebounce[A, T any](d time.Duration, fn func(A) (T, error), opts ...Option) (call func(A) *Result[T], cancel func()) {
	cfg := newConfig(opts)
	var (
		mu      sync.Mutex
		timer   *Timer
		pending *Result[T]
		arg     A
	)

	fire := func() {
		mu.Lock()
		res, a := pending, arg
		timer, pending = nil, nil
		var zero A
		arg = zero
		mu.Unlock()
		if res == nil {
			return
		}
		cfg.emit(EventInvoke, "debounce", 0)
		res.settle(fn(a))
	}

	call = func(a A) *Result[T] {
		mu.Lock()
		defer mu.Unlock()
		arg = a
		if pending != nil {
			timer.Refresh()
			cfg.emit(EventCoalesce, "debounce", 0)
			return pending
		}
		pending = newResult[T]()
		timer = NewTimer(d, fire, WithClock(cfg.clock))
		return pending
	}

	cancel = func() {
		mu.Lock()
		defer mu.Unlock()
		if timer == nil {
			return
		}
		timer.Cancel()
		timer, pending = nil, nil
		var zero A
		arg = zero
		cfg.emit(EventCancel, "debounce", 0)
	}

	return call, cancel
}
