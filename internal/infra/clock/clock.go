// Package clock provides the wall clock used for timestamps and order ids.
package clock

import (
	"time"

	"storefront/internal/domain/service"
)

type systemClock struct{}

// New returns the system clock
func New() service.Clock {
	return systemClock{}
}

// Now returns the current local time
func (systemClock) Now() time.Time {
	return time.Now()
}

// Fixed is a clock that always reports the same instant
type Fixed struct {
	At time.Time
}

// Now returns the fixed instant
func (f *Fixed) Now() time.Time {
	return f.At
}

// Advance moves the fixed instant forward by d
func (f *Fixed) Advance(d time.Duration) {
	f.At = f.At.Add(d)
}
