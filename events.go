package pace

// Observer receives combinator lifecycle events. Implementations must be
// safe for concurrent use when the combinator is called from multiple
// goroutines.
type Observer interface {
	On(eventData EventData)
}

// Event represents a combinator event type.
type Event int

const (
	// EventInvoke is emitted immediately before the wrapped function runs.
	EventInvoke Event = iota
	// EventHit is emitted when a memoizer returns a stored result without
	// invoking the wrapped function.
	EventHit
	// EventCoalesce is emitted when a caller joins an in-flight call or an
	// open debounce window instead of triggering a new one.
	EventCoalesce
	// EventCancel is emitted when an open debounce window is cancelled.
	EventCancel
	// EventRetry is emitted after a failed attempt that will be retried.
	EventRetry
)

// EventData carries the details of a combinator event.
type EventData struct {
	Event Event
	// Source names the emitting combinator: "shared", "once",
	// "oncechanged", "memoize", "debounce", or "retry".
	Source string
	// Attempt is the attempt number, starting at 1. Set only by
	// [WithRetries]; other combinators leave it zero.
	Attempt int
}

func (c *config) emit(event Event, source string, attempt int) {
	if c.observer == nil {
		return
	}
	c.observer.On(EventData{
		Event:   event,
		Source:  source,
		Attempt: attempt,
	})
}
