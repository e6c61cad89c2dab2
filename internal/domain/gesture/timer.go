package gesture

import "time"

// Timer is a cancellable one-shot timer. Stop reports whether the timer was
// stopped before firing.
type Timer interface {
	Stop() bool
}

// TimerFactory schedules fire after d. Tests substitute a manual factory so
// long-press behavior runs without sleeping.
type TimerFactory func(d time.Duration, fire func()) Timer

// AfterFunc is the default TimerFactory, backed by time.AfterFunc.
func AfterFunc(d time.Duration, fire func()) Timer {
	return time.AfterFunc(d, fire)
}
