package ui

import "time"

// Clock abstracts time for the wait primitive so tests can run without real
// sleeps.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock is the real-time Clock used outside of tests.
type SystemClock struct{}

func (SystemClock) Now() time.Time        { return time.Now() }
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }

// DefaultPollInterval is the pause between predicate checks in Await.
const DefaultPollInterval = 250 * time.Millisecond

// Await polls pred until it returns true or the timeout elapses. It returns
// false on timeout. This is the single bounded-wait primitive: timing out is
// an expected outcome, never an error.
func Await(pred func() bool, timeout time.Duration, clock Clock) bool {
	deadline := clock.Now().Add(timeout)
	for {
		if pred() {
			return true
		}
		if !clock.Now().Before(deadline) {
			return false
		}
		clock.Sleep(DefaultPollInterval)
	}
}
