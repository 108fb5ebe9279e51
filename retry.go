package pace

import (
	"context"
	"time"
)

// WithRetries wraps fn so that a failing call is attempted again, up to
// [WithMaxRetries] attempts in total (default 3). The first attempt is
// never delayed. Between retries the call suspends for the current delay
// (default 0, set with [WithDelay]), which is then multiplied by the
// backoff factor (default 1, set with [WithBackoff]) for the next round.
//
// On success the result returns immediately; once the attempt bound is
// reached the last error propagates as-is. A max of 1 means a single
// attempt with no retry. The wait between attempts aborts with ctx.Err()
// if ctx is done first.
func WithRetries[T any](fn func(context.Context) (T, error), opts ...Option) func(context.Context) (T, error) {
	cfg := newConfig(opts)

	return func(ctx context.Context) (T, error) {
		delay := cfg.delay
		for attempt := 1; ; attempt++ {
			cfg.emit(EventInvoke, "retry", attempt)
			v, err := fn(ctx)
			if err == nil {
				return v, nil
			}
			if attempt >= cfg.maxRetries {
				var zero T
				return zero, err
			}
			cfg.emit(EventRetry, "retry", attempt)
			if delay > 0 {
				select {
				case <-cfg.clock.After(delay):
				case <-ctx.Done():
					var zero T
					return zero, ctx.Err()
				}
				delay = time.Duration(float64(delay) * cfg.backoff)
			}
		}
	}
}
