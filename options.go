package pace

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Defaults for [WithRetries] when the corresponding option is not given.
const (
	DefaultMaxRetries = 3
	DefaultDelay      = 0
	DefaultBackoff    = 1.0
)

// config holds the per-instance settings shared by all combinators.
// Each constructor snapshots one at build time; options never apply
// retroactively to an already-built combinator.
type config struct {
	clock    clockwork.Clock
	observer Observer

	// retry settings, read only by WithRetries.
	maxRetries int
	delay      time.Duration
	backoff    float64
}

func newConfig(opts []Option) config {
	cfg := config{
		clock:      clockwork.NewRealClock(),
		maxRetries: DefaultMaxRetries,
		delay:      DefaultDelay,
		backoff:    DefaultBackoff,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option configures a combinator at construction time.
type Option func(*config)

// WithClock substitutes the clock used for delays and timers. Defaults to
// the real clock; pass a clockwork fake to drive time in tests.
func WithClock(c clockwork.Clock) Option {
	return func(cfg *config) {
		cfg.clock = c
	}
}

// WithObserver attaches an Observer that receives lifecycle events from the
// combinator for its whole lifetime.
func WithObserver(o Observer) Option {
	return func(cfg *config) {
		cfg.observer = o
	}
}

// WithMaxRetries bounds the total number of attempts made by [WithRetries].
// Values below 1 are treated as 1: a single attempt with no retry.
func WithMaxRetries(n int) Option {
	return func(cfg *config) {
		if n < 1 {
			n = 1
		}
		cfg.maxRetries = n
	}
}

// WithDelay sets the pause before the second attempt in [WithRetries].
// The first attempt is never delayed. Negative values are treated as zero.
func WithDelay(d time.Duration) Option {
	return func(cfg *config) {
		if d < 0 {
			d = 0
		}
		cfg.delay = d
	}
}

// WithBackoff sets the multiplier applied to the delay after each failed
// attempt in [WithRetries]. 1 keeps the delay constant.
func WithBackoff(factor float64) Option {
	return func(cfg *config) {
		cfg.backoff = factor
	}
}
