// Package clock supplies "today" to the derivation engine so pure logic
// never reads the wall clock directly.
package clock

import "time"

type Clock interface {
	// Today returns the current date truncated to midnight UTC.
	Today() time.Time
}

type systemClock struct{}

func (systemClock) Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// System returns the real clock.
func System() Clock {
	return systemClock{}
}

// Fixed returns a clock pinned to the given date, for tests.
func Fixed(t time.Time) Clock {
	return fixedClock{day: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

type fixedClock struct {
	day time.Time
}

func (f fixedClock) Today() time.Time {
	return f.day
}
