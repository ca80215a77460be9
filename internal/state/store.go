// Package state holds the single mutable DemoState container and the
// notification bus everything else reads and writes through.
package state

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/nexuslabs/showrunner/pkg/domain"
	"github.com/nexuslabs/showrunner/pkg/ports"
)

// Store is the process-wide demo state. It is created once at the
// composition root and injected into every component; mutation happens only
// through its methods, and every successful mutation is announced on the
// bus before the call returns.
//
// Invalid enum input is a silent no-op by contract: state unchanged,
// nothing persisted, no event fired. A presenter's mis-click must never
// crash the view.
type Store struct {
	mu sync.Mutex

	industry    domain.Industry
	persona     domain.Persona
	demoMode    domain.DemoMode
	currentArc  domain.ArcID
	currentStep int
	aiMode      domain.AIMode
	theme       domain.Theme
	dataset     *domain.Dataset
	connections map[domain.Platform]domain.ConnectionStatus

	bus    *Bus
	prefs  ports.PrefsStore
	logger *slog.Logger
}

// Snapshot is a read-only copy of the mutable fields, for inspection and
// rendering. Connections is a fresh map on every call.
type Snapshot struct {
	Industry    domain.Industry
	Persona     domain.Persona
	DemoMode    domain.DemoMode
	CurrentArc  domain.ArcID
	CurrentStep int
	AIMode      domain.AIMode
	Theme       domain.Theme
	Connections map[domain.Platform]domain.ConnectionStatus
}

// Option configures the store.
type Option func(*Store)

// WithPrefs attaches a durable backend for the persisted fields
// (industry, persona, theme). Without it nothing survives the session.
func WithPrefs(p ports.PrefsStore) Option {
	return func(s *Store) { s.prefs = p }
}

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// New creates the store with fixed defaults, then hydrates the persisted
// fields from the prefs backend when one is attached. Persisted values that
// fail enum validation are ignored the same way live input would be.
func New(opts ...Option) *Store {
	s := &Store{
		industry:    domain.IndustryConsulting,
		persona:     domain.PersonaCEO,
		demoMode:    domain.ModeFree,
		aiMode:      domain.AIScripted,
		theme:       domain.ThemeDark,
		connections: make(map[domain.Platform]domain.ConnectionStatus),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	s.bus = NewBus(s.logger)
	s.hydrate()
	return s
}

func (s *Store) hydrate() {
	if s.prefs == nil {
		return
	}
	ctx := context.Background()

	if v, err := s.prefs.Get(ctx, ports.PrefIndustry); err == nil {
		if ind := domain.Industry(v); ind.Valid() {
			s.industry = ind
		}
	}
	if v, err := s.prefs.Get(ctx, ports.PrefPersona); err == nil {
		if p := domain.Persona(v); p.Valid() {
			s.persona = p
		}
	}
	if v, err := s.prefs.Get(ctx, ports.PrefTheme); err == nil {
		if t := domain.Theme(v); t.Valid() {
			s.theme = t
		}
	}
}

func (s *Store) persist(key, value string) {
	if s.prefs == nil {
		return
	}
	if err := s.prefs.Set(context.Background(), key, value); err != nil {
		s.logger.Warn("failed to persist preference", "key", key, "err", err)
	}
}

// Bus exposes the notification bus for subscribers.
func (s *Store) Bus() *Bus {
	return s.bus
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	conns := make(map[domain.Platform]domain.ConnectionStatus, len(s.connections))
	for k, v := range s.connections {
		conns[k] = v
	}
	return Snapshot{
		Industry:    s.industry,
		Persona:     s.persona,
		DemoMode:    s.demoMode,
		CurrentArc:  s.currentArc,
		CurrentStep: s.currentStep,
		AIMode:      s.aiMode,
		Theme:       s.theme,
		Connections: conns,
	}
}

// Industry returns the current industry selection.
func (s *Store) Industry() domain.Industry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.industry
}

// Persona returns the current persona selection.
func (s *Store) Persona() domain.Persona {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persona
}

// Theme returns the current theme.
func (s *Store) Theme() domain.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// AIMode returns the current AI mode.
func (s *Store) AIMode() domain.AIMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.aiMode
}

// DemoMode returns the current demo mode.
func (s *Store) DemoMode() domain.DemoMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.demoMode
}

// CurrentArc returns the active arc ID and whether one is set.
// The step index is only meaningful in guided mode.
func (s *Store) CurrentArc() (domain.ArcID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentArc, s.currentArc != ""
}

// CurrentStep returns the read pointer into the active arc.
func (s *Store) CurrentStep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentStep
}

// ActiveDataset returns the resolved dataset, or nil when none is installed.
func (s *Store) ActiveDataset() *domain.Dataset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dataset
}

// SetActiveDataset installs the resolved data bundle. The industry change
// event already covers renderers; installing a dataset is not announced.
func (s *Store) SetActiveDataset(d *domain.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dataset = d
}

// Connection returns the recorded status for a platform.
// Platforms never written read back as not-connected.
func (s *Store) Connection(p domain.Platform) domain.ConnectionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	if status, ok := s.connections[p]; ok {
		return status
	}
	return domain.StatusNotConnected
}

// SwitchIndustry validates and applies a new industry. On success it
// persists the value and publishes EventIndustryChanged; on an invalid id
// it does nothing at all.
func (s *Store) SwitchIndustry(id domain.Industry) {
	if !id.Valid() {
		s.logger.Debug("ignoring invalid industry", "id", string(id))
		return
	}

	s.mu.Lock()
	s.industry = id
	s.mu.Unlock()

	s.persist(ports.PrefIndustry, string(id))
	s.bus.Publish(domain.EventIndustryChanged, domain.IndustryChanged{Industry: id})
}

// SwitchPersona validates and applies a new persona. Same contract as
// SwitchIndustry.
func (s *Store) SwitchPersona(id domain.Persona) {
	if !id.Valid() {
		s.logger.Debug("ignoring invalid persona", "id", string(id))
		return
	}

	s.mu.Lock()
	s.persona = id
	s.mu.Unlock()

	s.persist(ports.PrefPersona, string(id))
	s.bus.Publish(domain.EventPersonaChanged, domain.PersonaChanged{Persona: id})
}

// StartArc unconditionally enters guided mode at step 0 of the given arc.
// The store does not know the arc registry; the player validates IDs before
// calling in here.
func (s *Store) StartArc(id domain.ArcID) {
	s.mu.Lock()
	s.demoMode = domain.ModeGuided
	s.currentArc = id
	s.currentStep = 0
	s.mu.Unlock()

	s.bus.Publish(domain.EventArcChanged, domain.ArcChanged{Mode: domain.ModeGuided, Arc: id})
	s.bus.Publish(domain.EventStepChanged, domain.StepChanged{Arc: id, Step: 0})
}

// EndArc returns to free mode and clears the arc pointer. Connections and
// the active dataset are untouched.
func (s *Store) EndArc() {
	s.mu.Lock()
	s.demoMode = domain.ModeFree
	s.currentArc = ""
	s.currentStep = 0
	s.mu.Unlock()

	s.bus.Publish(domain.EventArcChanged, domain.ArcChanged{Mode: domain.ModeFree})
}

// NextStep advances the read pointer and returns the new index. The store
// enforces no upper bound; terminating at the last step is the player's
// job.
func (s *Store) NextStep() int {
	s.mu.Lock()
	s.currentStep++
	step := s.currentStep
	arc := s.currentArc
	s.mu.Unlock()

	s.bus.Publish(domain.EventStepChanged, domain.StepChanged{Arc: arc, Step: step})
	return step
}

// PrevStep moves the read pointer back, flooring at 0. At 0 it stays put
// and fires nothing.
func (s *Store) PrevStep() int {
	s.mu.Lock()
	if s.currentStep == 0 {
		s.mu.Unlock()
		return 0
	}
	s.currentStep--
	step := s.currentStep
	arc := s.currentArc
	s.mu.Unlock()

	s.bus.Publish(domain.EventStepChanged, domain.StepChanged{Arc: arc, Step: step})
	return step
}

// ToggleAIMode flips between scripted and live. Not persisted.
func (s *Store) ToggleAIMode() domain.AIMode {
	s.mu.Lock()
	s.aiMode = s.aiMode.Toggle()
	mode := s.aiMode
	s.mu.Unlock()

	s.bus.Publish(domain.EventAIModeChanged, domain.AIModeChanged{Mode: mode})
	return mode
}

// ToggleTheme flips between dark and light and persists the result.
func (s *Store) ToggleTheme() domain.Theme {
	s.mu.Lock()
	s.theme = s.theme.Toggle()
	theme := s.theme
	s.mu.Unlock()

	s.persist(ports.PrefTheme, string(theme))
	s.bus.Publish(domain.EventThemeChanged, domain.ThemeChanged{Theme: theme})
	return theme
}

// SetConnection records a platform's connection result and announces it.
// The simulator only calls this for outcomes that should outlive the
// overlay (reaching connected); aborted runs leave the map alone.
func (s *Store) SetConnection(p domain.Platform, status domain.ConnectionStatus) {
	if !p.Valid() {
		s.logger.Debug("ignoring invalid platform", "id", string(p))
		return
	}

	s.mu.Lock()
	s.connections[p] = status
	s.mu.Unlock()

	s.bus.Publish(domain.EventConnectionChanged, domain.ConnectionChanged{Platform: p, Status: status})
}

// ResetConnections clears all recorded connection results.
func (s *Store) ResetConnections() {
	s.mu.Lock()
	s.connections = make(map[domain.Platform]domain.ConnectionStatus)
	s.mu.Unlock()
}
