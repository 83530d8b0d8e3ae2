package usecase

import "time"

// Scheduler runs fn once after d. The AI move delay goes through it so tests can fire callbacks by hand.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
}

type TimeScheduler struct{}

func (TimeScheduler) AfterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}
