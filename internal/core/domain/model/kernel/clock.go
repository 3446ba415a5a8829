package kernel

import "time"

// Clock supplies the current time to components that stamp or project dates,
// so they can be driven deterministically in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant.
type FixedClock struct {
	now time.Time
}

func NewFixedClock(now time.Time) FixedClock {
	return FixedClock{now: now}
}

func (c FixedClock) Now() time.Time {
	return c.now
}
