package clock

import "time"

// Clock supplies the current wall-clock time. Commands capture it once
// per invocation so every calculation within a command agrees.
type Clock interface {
	Now() time.Time
}

// System reads the real system clock.
type System struct{}

// Now returns the current system time.
func (System) Now() time.Time {
	return time.Now()
}

// Fixed is a Clock pinned to a settable instant, for deterministic tests.
type Fixed struct {
	T time.Time
}

// Now returns the pinned time.
func (f *Fixed) Now() time.Time {
	return f.T
}

// Advance moves the pinned time forward by d.
func (f *Fixed) Advance(d time.Duration) {
	f.T = f.T.Add(d)
}
