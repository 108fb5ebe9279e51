package pace

import "golang.org/x/sync/singleflight"

// Shared wraps fn so that concurrent callers share a single in-flight
// invocation. The first caller starts fn; callers arriving before it
// settles block and receive the very same value or error, and fn is not
// invoked again for them. The slot clears the moment fn settles, success or
// failure alike, so a call issued strictly afterwards starts fresh.
//
// Errors are never cached: they fan out verbatim to every waiting caller,
// and the next call re-invokes fn.
func Shared[T any](fn func() (T, error), opts ...Option) func() (T, error) {
	cfg := newConfig(opts)
	var group singleflight.Group

	return func() (T, error) {
		val, err, shared := group.Do("", func() (any, error) {
			cfg.emit(EventInvoke, "shared", 0)
			return fn()
		})
		if shared {
			cfg.emit(EventCoalesce, "shared", 0)
		}
		if err != nil {
			var zero T
			return zero, err
		}
		return val.(T), nil
	}
}
