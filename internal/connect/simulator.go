// Package connect drives the simulated OAuth-style connection flow for
// external platforms. There is no network anywhere in here: the handshake
// is a timed state machine whose only durable side effect is the final
// connected entry written into the state store.
package connect

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nexuslabs/showrunner/internal/state"
	"github.com/nexuslabs/showrunner/pkg/domain"
	"github.com/nexuslabs/showrunner/pkg/ports"
)

// Delays are the fixed waits between automatic phase hops.
type Delays struct {
	Loading    time.Duration // loading -> consent
	Connecting time.Duration // connecting -> scanning
	Scanning   time.Duration // scanning -> connected
}

// DefaultDelays paces the overlay like a plausible real handshake.
func DefaultDelays() Delays {
	return Delays{
		Loading:    900 * time.Millisecond,
		Connecting: 1200 * time.Millisecond,
		Scanning:   1500 * time.Millisecond,
	}
}

// run is one simulation attempt. Each run owns a generation; a deferred
// callback whose generation no longer matches the simulator's current one
// has been superseded and must change nothing.
type run struct {
	gen      uint64
	id       string
	platform domain.Platform
	phase    domain.ConnectionStatus
	cancel   ports.CancelTimer
}

// Simulator owns at most one in-flight run globally. Starting a new run
// for any platform first cancels whatever was in flight.
type Simulator struct {
	mu     sync.Mutex
	gen    uint64
	cur    *run
	store  *state.Store
	sched  ports.Scheduler
	delays Delays
	logger *slog.Logger
}

// Option configures the simulator.
type Option func(*Simulator)

// WithScheduler replaces the process-clock scheduler. Tests inject a
// manual one.
func WithScheduler(s ports.Scheduler) Option {
	return func(sim *Simulator) { sim.sched = s }
}

// WithDelays overrides the phase pacing.
func WithDelays(d Delays) Option {
	return func(sim *Simulator) { sim.delays = d }
}

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(sim *Simulator) { sim.logger = logger }
}

// NewSimulator wires a simulator to the state store.
func NewSimulator(store *state.Store, opts ...Option) *Simulator {
	sim := &Simulator{
		store:  store,
		sched:  ports.RealScheduler{},
		delays: DefaultDelays(),
	}
	for _, opt := range opts {
		opt(sim)
	}
	if sim.logger == nil {
		sim.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return sim
}

// Show starts a simulation for a platform, replacing any in-flight run
// atomically from the caller's point of view. An invalid platform id is a
// silent no-op. Returns the run id for correlation in logs.
func (s *Simulator) Show(platform domain.Platform) (string, bool) {
	if !platform.Valid() {
		s.logger.Debug("ignoring invalid platform", "id", string(platform))
		return "", false
	}

	s.mu.Lock()
	s.supersedeLocked()

	r := &run{
		gen:      s.gen,
		id:       uuid.NewString(),
		platform: platform,
		phase:    domain.StatusLoading,
	}
	s.cur = r
	r.cancel = s.sched.After(s.delays.Loading, s.advanceTo(r.gen, domain.StatusConsent))
	s.mu.Unlock()

	s.logger.Info("simulation started", "run", r.id, "platform", string(platform))
	s.publish(platform, domain.StatusLoading)
	return r.id, true
}

// supersedeLocked invalidates the current run: its generation is left
// behind and any pending timer is stopped. Callers hold the lock.
func (s *Simulator) supersedeLocked() {
	s.gen++
	if s.cur != nil && s.cur.cancel != nil {
		s.cur.cancel()
	}
	s.cur = nil
}

// advanceTo returns a deferred callback that moves the run into the next
// phase, provided the owning generation is still current when it fires.
func (s *Simulator) advanceTo(gen uint64, next domain.ConnectionStatus) func() {
	return func() {
		s.mu.Lock()
		if s.cur == nil || s.cur.gen != gen {
			// Superseded after this timer was scheduled. Do nothing.
			s.mu.Unlock()
			return
		}
		r := s.cur
		r.phase = next
		r.cancel = nil

		switch next {
		case domain.StatusConnecting:
			r.cancel = s.sched.After(s.delays.Connecting, s.advanceTo(gen, domain.StatusScanning))
		case domain.StatusScanning:
			r.cancel = s.sched.After(s.delays.Scanning, s.advanceTo(gen, domain.StatusConnected))
		case domain.StatusConnected:
			// Terminal success. The run is over; only now does the result
			// land in the store's connections map.
			s.cur = nil
		}
		platform := r.platform
		id := r.id
		s.mu.Unlock()

		if next == domain.StatusConnected {
			s.logger.Info("simulation connected", "run", id, "platform", string(platform))
			s.store.SetConnection(platform, domain.StatusConnected)
			return
		}
		s.publish(platform, next)
	}
}

// Authorize is the user approving the consent screen. It only applies in
// the consent phase; anywhere else it is a no-op.
func (s *Simulator) Authorize() {
	s.mu.Lock()
	if s.cur == nil || s.cur.phase != domain.StatusConsent {
		s.mu.Unlock()
		return
	}
	r := s.cur
	r.phase = domain.StatusConnecting
	r.cancel = s.sched.After(s.delays.Connecting, s.advanceTo(r.gen, domain.StatusScanning))
	platform := r.platform
	s.mu.Unlock()

	s.publish(platform, domain.StatusConnecting)
}

// Close dismisses the overlay. At any phase before connected this aborts
// the run with no durable side effect and guarantees no later phase
// transition can land.
func (s *Simulator) Close() {
	s.mu.Lock()
	if s.cur == nil {
		s.mu.Unlock()
		return
	}
	id := s.cur.id
	s.supersedeLocked()
	s.mu.Unlock()

	s.logger.Info("simulation closed", "run", id)
}

// Cancel is the user declining consent. Identical effect to Close; kept
// separate because the overlay renders it as its own affordance.
func (s *Simulator) Cancel() {
	s.Close()
}

// Current returns the platform and phase of the in-flight run, if any.
func (s *Simulator) Current() (domain.Platform, domain.ConnectionStatus, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cur == nil {
		return "", domain.StatusNotConnected, false
	}
	return s.cur.platform, s.cur.phase, true
}

func (s *Simulator) publish(platform domain.Platform, status domain.ConnectionStatus) {
	s.store.Bus().Publish(domain.EventConnectionChanged, domain.ConnectionChanged{
		Platform: platform,
		Status:   status,
	})
}
