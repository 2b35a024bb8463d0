package services

import "time"

// Clock supplies the current instant. Day-boundary decisions (streaks,
// locks, future classification) must go through it so tests can pin
// "today" instead of depending on wall-clock time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func SystemClock() Clock { return systemClock{} }

// FixedClock always reports the same instant.
type FixedClock struct {
	Instant time.Time
}

func (clock FixedClock) Now() time.Time { return clock.Instant }
