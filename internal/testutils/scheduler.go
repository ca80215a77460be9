// Package testutils holds helpers shared by component tests.
package testutils

import (
	"sort"
	"sync"
	"time"

	"github.com/nexuslabs/showrunner/pkg/ports"
)

type fakeTimer struct {
	due       time.Duration
	fn        func()
	cancelled bool
	fired     bool
}

// FakeScheduler implements ports.Scheduler on a manual clock so timer
// behavior can be tested deterministically.
type FakeScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*fakeTimer
}

// NewFakeScheduler creates a scheduler at time zero.
func NewFakeScheduler() *FakeScheduler {
	return &FakeScheduler{}
}

// After registers a callback due after d on the manual clock.
func (f *FakeScheduler) After(d time.Duration, fn func()) ports.CancelTimer {
	f.mu.Lock()
	t := &fakeTimer{due: f.now + d, fn: fn}
	f.timers = append(f.timers, t)
	f.mu.Unlock()

	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		t.cancelled = true
	}
}

// Advance moves the clock forward and fires every due, uncancelled timer
// in deadline order. Callbacks run outside the scheduler lock so they can
// schedule follow-up timers.
func (f *FakeScheduler) Advance(d time.Duration) {
	f.mu.Lock()
	f.now += d
	deadline := f.now
	f.mu.Unlock()

	for {
		next := f.takeDue(deadline)
		if next == nil {
			return
		}
		next.fn()
	}
}

func (f *FakeScheduler) takeDue(deadline time.Duration) *fakeTimer {
	f.mu.Lock()
	defer f.mu.Unlock()

	var due []*fakeTimer
	for _, t := range f.timers {
		if !t.fired && !t.cancelled && t.due <= deadline {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.SliceStable(due, func(i, j int) bool { return due[i].due < due[j].due })
	due[0].fired = true
	return due[0]
}

// Pending reports how many timers are scheduled and neither fired nor
// cancelled.
func (f *FakeScheduler) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := 0
	for _, t := range f.timers {
		if !t.fired && !t.cancelled {
			n++
		}
	}
	return n
}
