package pace_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	pace "github.com/probablyarth/pace-go"
)

// waitFired waits for an onFire signal, failing the test if none arrives.
func waitFired(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timer did not fire")
	}
}

func TestTimerFiresOnceAfterDuration(t *testing.T) {
	clock := clockwork.NewFakeClock()
	var fires atomic.Int32
	fired := make(chan struct{})

	pace.NewTimer(10*time.Millisecond, func() {
		fires.Add(1)
		close(fired)
	}, pace.WithClock(clock))

	clock.Advance(10 * time.Millisecond)
	waitFired(t, fired)
	require.EqualValues(t, 1, fires.Load())

	// Already fired: nothing left to fire, refresh and cancel are no-ops.
	clock.Advance(time.Hour)
	require.EqualValues(t, 1, fires.Load())
}

func TestTimerRefreshExtendsDeadline(t *testing.T) {
	clock := clockwork.NewFakeClock()
	var fires atomic.Int32
	fired := make(chan struct{})

	tm := pace.NewTimer(10*time.Millisecond, func() {
		fires.Add(1)
		close(fired)
	}, pace.WithClock(clock))

	clock.Advance(5 * time.Millisecond)
	require.True(t, tm.Refresh(), "armed timer must accept Refresh")

	// The original deadline passes without a fire.
	clock.Advance(5 * time.Millisecond)
	require.EqualValues(t, 0, fires.Load())

	// The refreshed deadline fires.
	clock.Advance(5 * time.Millisecond)
	waitFired(t, fired)
	require.EqualValues(t, 1, fires.Load())
}

func TestTimerCancelDisarmsPermanently(t *testing.T) {
	clock := clockwork.NewFakeClock()
	var fires atomic.Int32

	tm := pace.NewTimer(10*time.Millisecond, func() {
		fires.Add(1)
	}, pace.WithClock(clock))

	require.True(t, tm.Cancel())
	clock.Advance(time.Hour)
	require.EqualValues(t, 0, fires.Load())

	require.False(t, tm.Refresh(), "Refresh after Cancel must report false")
	require.False(t, tm.Cancel(), "second Cancel must report false")
}

func TestTimerStateAfterFire(t *testing.T) {
	clock := clockwork.NewFakeClock()
	fired := make(chan struct{})

	tm := pace.NewTimer(time.Millisecond, func() {
		close(fired)
	}, pace.WithClock(clock))

	clock.Advance(time.Millisecond)
	waitFired(t, fired)

	require.False(t, tm.Refresh(), "Refresh after fire must report false")
	require.False(t, tm.Cancel(), "Cancel after fire must report false")
}
