package pace

import "sync"

// Once wraps fn so that only its first successful call runs; every later
// call returns the stored result without invoking fn again, for the
// lifetime of the combinator instance.
//
// A failed call is not stored: the error propagates and the next call
// invokes fn again.
func Once[T any](fn func() (T, error), opts ...Option) func() (T, error) {
	cfg := newConfig(opts)
	var (
		mu   sync.Mutex
		done bool
		val  T
	)

	return func() (T, error) {
		mu.Lock()
		defer mu.Unlock()
		if done {
			cfg.emit(EventHit, "once", 0)
			return val, nil
		}
		cfg.emit(EventInvoke, "once", 0)
		v, err := fn()
		if err != nil {
			var zero T
			return zero, err
		}
		val, done = v, true
		return val, nil
	}
}

// OnceChanged wraps fn so that it runs only when the argument's key differs
// from the key of the immediately preceding call. A repeat of the previous
// key returns the stored result; a key seen earlier but not last triggers a
// fresh invocation — only the last call is remembered.
//
// Failed calls leave the stored pair untouched and are not remembered.
func OnceChanged[A, T any](key KeyFunc[A], fn func(A) (T, error), opts ...Option) func(A) (T, error) {
	cfg := newConfig(opts)
	var (
		mu      sync.Mutex
		have    bool
		lastKey string
		last    T
	)

	return func(a A) (T, error) {
		mu.Lock()
		defer mu.Unlock()
		k := key(a)
		if have && k == lastKey {
			cfg.emit(EventHit, "oncechanged", 0)
			return last, nil
		}
		cfg.emit(EventInvoke, "oncechanged", 0)
		v, err := fn(a)
		if err != nil {
			var zero T
			return zero, err
		}
		have, lastKey, last = true, k, v
		return v, nil
	}
}

// Memoize wraps fn with an unbounded cache keyed by key(argument). A miss
// invokes fn and stores the result; a hit returns the stored value without
// invoking fn. Keys are never evicted, so the cache grows with the number
// of distinct keys — keep that in mind for high-cardinality arguments.
//
// Errors are not cached; a failed key is recomputed on its next call.
func Memoize[A, T any](key KeyFunc[A], fn func(A) (T, error), opts ...Option) func(A) (T, error) {
	cfg := newConfig(opts)
	var mu sync.Mutex
	store := make(map[string]T)

	return func(a A) (T, error) {
		mu.Lock()
		defer mu.Unlock()
		k := key(a)
		if v, ok := store[k]; ok {
			cfg.emit(EventHit, "memoize", 0)
			return v, nil
		}
		cfg.emit(EventInvoke, "memoize", 0)
		v, err := fn(a)
		if err != nil {
			var zero T
			return zero, err
		}
		store[k] = v
		return v, nil
	}
}
