package components

import "time"

// TimerComponent is a cadence measured from its own last-fired timestamp.
//
// It is advisory: Fire reports true once the observed clock has moved at
// least Interval past LastFired, so the real cadence is never shorter than
// Interval.
type TimerComponent struct {
	Name      string        // e.g. "fast_tick"
	Interval  time.Duration // nominal period
	LastFired time.Duration // clock reading of the last firing
}

// Fire reports whether the timer is due at now and, if so, restarts it from
// now.
func (t *TimerComponent) Fire(now time.Duration) bool {
	if now-t.LastFired < t.Interval {
		return false
	}
	t.LastFired = now
	return true
}

// Reset restarts the timer at now without firing.
func (t *TimerComponent) Reset(now time.Duration) {
	t.LastFired = now
}
