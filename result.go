package pace

import "context"

// Result is the pending outcome of a deferred call. Every caller that joins
// the same debounce window holds the same *Result; it settles exactly once,
// when the wrapped function has run.
//
// A Result obtained from a window that is cancelled via
// [CancelableDebounce]'s cancel never settles. See the CancelableDebounce
// doc for the contract.
type Result[T any] struct {
	done chan struct{}
	val  T
	err  error
}

func newResult[T any]() *Result[T] {
	return &Result[T]{done: make(chan struct{})}
}

// settle records the outcome and releases all waiters. Called at most once,
// by the window that owns the Result.
func (r *Result[T]) settle(val T, err error) {
	r.val = val
	r.err = err
	close(r.done)
}

// Done returns a channel that is closed when the Result settles.
func (r *Result[T]) Done() <-chan struct{} {
	return r.done
}

// Wait blocks until the Result settles or ctx is done, whichever comes
// first. On ctx expiry it returns ctx.Err(); the Result itself may still
// settle later for other waiters.
func (r *Result[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-r.done:
		return r.val, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Peek reports the outcome without blocking. settled is false while the
// call is still pending, and forever for a cancelled window's Result.
func (r *Result[T]) Peek() (val T, err error, settled bool) {
	select {
	case <-r.done:
		return r.val, r.err, true
	default:
		var zero T
		return zero, nil, false
	}
}
