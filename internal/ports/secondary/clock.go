package secondary

import "time"

// Clock defines the secondary port for the reference date used by
// availability checks. Injectable so tests can pin "today" to any date.
type Clock interface {
	// Now returns the current reference time.
	Now() time.Time
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }
