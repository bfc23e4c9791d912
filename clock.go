package chrono

import "time"

// Clock supplies the current instant to now-style constructors.
// Production code uses SystemClock; tests substitute FixedClock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// SystemClock returns a Clock backed by the system wall clock in UTC.
func SystemClock() Clock {
	return systemClock{}
}

type fixedClock struct {
	at time.Time
}

func (c fixedClock) Now() time.Time {
	return c.at
}

// FixedClock returns a Clock frozen at the given instant.
func FixedClock(at time.Time) Clock {
	return fixedClock{at: at.UTC()}
}
