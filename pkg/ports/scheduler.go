package ports

import "time"

// CancelTimer stops a pending callback. Calling it after the callback has
// fired is a no-op.
type CancelTimer func()

// Scheduler defers a callback. The engine never blocks on time; every
// delayed phase transition is a callback scheduled here, guarded by a run
// generation so a superseded run's callbacks land as no-ops.
type Scheduler interface {
	After(d time.Duration, fn func()) CancelTimer
}

// RealScheduler schedules on the process clock.
type RealScheduler struct{}

// After fires fn on its own goroutine after d.
func (RealScheduler) After(d time.Duration, fn func()) CancelTimer {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}
