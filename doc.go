// Package pace provides small combinators that reshape how and when a
// function runs: single-flight coalescing, memoization, debouncing, and
// retries with backoff.
//
// Each combinator wraps a plain function and returns a new callable with the
// same shape plus the added behavior, so they compose by nesting:
//
//	fetch := pace.Shared(fetchConfig) // concurrent callers share one call
//	load := pace.WithRetries(loadIndex, pace.WithMaxRetries(5))
//
// [Shared] coalesces concurrent callers onto a single in-flight invocation;
// everyone receives the same result or the same error, and the next call
// after settlement starts fresh. [Once], [OnceChanged], and [Memoize] cache
// synchronous results by call history. [Debounce] and [CancelableDebounce]
// delay execution until a quiet period has passed, handing every caller in
// the window the same pending [Result]. [WithRetries] re-invokes a failing
// operation up to a bound, growing the pause between attempts by a
// multiplier.
//
// Combinator instances are independent and safe for concurrent use. Time is
// taken from an injectable clock ([WithClock]), so timing behavior can be
// tested without real sleeps. Errors from the wrapped function surface
// verbatim: no combinator logs, wraps, or swallows them, and no combinator
// caches them.
package pace
