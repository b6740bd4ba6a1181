// Package clock provides the wall-clock time source and the cancellable
// recurring schedules that drive the view.
package clock

import "time"

// Clock provides time to the application.
type Clock interface {
	Now() time.Time
}

// Func adapts a plain function to Clock.
type Func func() time.Time

// Now calls f.
func (f Func) Now() time.Time {
	return f()
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// System returns a clock backed by the time package.
func System() Clock {
	return systemClock{}
}

// Source owns the published clock time. It is replaced wholesale on every Tick.
type Source struct {
	clock Clock
	now   time.Time
}

// NewSource returns a Source that has already published the current time.
func NewSource(c Clock) Source {
	if c == nil {
		c = System()
	}

	return Source{clock: c, now: c.Now()}
}

// Tick reads the clock and publishes the result.
func (s *Source) Tick() time.Time {
	s.now = s.clock.Now()

	return s.now
}

// Now returns the last published time.
func (s Source) Now() time.Time {
	return s.now
}
