package showrunner

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/nexuslabs/showrunner/internal/arc"
	"github.com/nexuslabs/showrunner/internal/connect"
	"github.com/nexuslabs/showrunner/internal/dataset"
	"github.com/nexuslabs/showrunner/internal/metrics"
	"github.com/nexuslabs/showrunner/internal/respond"
	"github.com/nexuslabs/showrunner/internal/state"
	"github.com/nexuslabs/showrunner/pkg/domain"
	"github.com/nexuslabs/showrunner/pkg/ports"
)

// Version is the library version, surfaced by the CLI.
const Version = "0.3.0"

// Engine is the high-level entry point for the Showrunner library.
// It wires the state store, context loader, response engine, connection
// simulator and arc player, and provides a simplified API for hosts.
type Engine struct {
	store     *state.Store
	datasets  *dataset.Registry
	loader    *dataset.Loader
	arcs      *arc.Registry
	responder *respond.Engine
	simulator *connect.Simulator
	player    *arc.Player
	metrics   *metrics.Set
	logger    *slog.Logger

	prefs ports.PrefsStore
	sched ports.Scheduler
	reg   prometheus.Registerer
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithPrefsStore attaches a durable backend for the persisted preferences
// (industry, persona, theme). Without it, every session starts fresh.
func WithPrefsStore(p ports.PrefsStore) Option {
	return func(e *Engine) { e.prefs = p }
}

// WithScheduler replaces the process-clock scheduler used for simulated
// delays and auto-advancing arc steps.
func WithScheduler(s ports.Scheduler) Option {
	return func(e *Engine) { e.sched = s }
}

// WithMetrics registers the engine's prometheus collectors on the given
// registerer and wires them to the state bus.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(e *Engine) { e.reg = reg }
}

// New initializes a Showrunner Engine: registries parsed from the embedded
// script data, state hydrated from the prefs backend, and the dataset for
// the resulting industry selection installed.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if e.sched == nil {
		e.sched = ports.RealScheduler{}
	}

	var err error
	e.datasets, err = dataset.NewRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to load datasets: %w", err)
	}
	e.arcs, err = arc.NewRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to load arc scripts: %w", err)
	}

	storeOpts := []state.Option{state.WithLogger(e.logger)}
	if e.prefs != nil {
		storeOpts = append(storeOpts, state.WithPrefs(e.prefs))
	}
	e.store = state.New(storeOpts...)

	if e.reg != nil {
		e.metrics = metrics.NewSet(e.reg)
		e.metrics.Watch(e.store.Bus())
	}

	e.loader = dataset.NewLoader(e.datasets, e.store, e.logger)
	if _, ok := e.loader.Resolve(""); !ok {
		return nil, fmt.Errorf("no dataset registered for industry %q", e.store.Industry())
	}

	e.responder = respond.NewEngine(respond.WithLogger(e.logger))
	e.simulator = connect.NewSimulator(e.store,
		connect.WithScheduler(e.sched),
		connect.WithLogger(e.logger),
	)
	e.player = arc.NewPlayer(e.arcs, e.store,
		arc.WithScheduler(e.sched),
		arc.WithLogger(e.logger),
	)

	return e, nil
}

// Store returns the state store, the single source of truth for the demo.
func (e *Engine) Store() *state.Store {
	return e.store
}

// Player returns the guided arc player.
func (e *Engine) Player() *arc.Player {
	return e.player
}

// Simulator returns the connection simulator.
func (e *Engine) Simulator() *connect.Simulator {
	return e.simulator
}

// Arcs lists the registered guided arcs.
func (e *Engine) Arcs() []*domain.Arc {
	return e.arcs.Arcs()
}

// Industries lists the industries with a registered dataset.
func (e *Engine) Industries() []domain.Industry {
	return e.datasets.Industries()
}

// Ask resolves a free-text query against the current demo context.
func (e *Engine) Ask(query string) domain.Response {
	resp := e.responder.Resolve(query, respond.ResolveContext{
		Dataset: e.store.ActiveDataset(),
		Persona: e.store.Persona(),
	})
	if e.metrics != nil {
		e.metrics.ObserveResolve(resp)
	}
	return resp
}

// SwitchIndustry switches the demo to another industry and installs its
// dataset. Returns false (and changes nothing) when no dataset is
// registered for the id.
func (e *Engine) SwitchIndustry(id domain.Industry) bool {
	_, ok := e.loader.Resolve(id)
	return ok
}

// SwitchPersona switches the role view. Invalid ids are a silent no-op,
// matching the store's contract.
func (e *Engine) SwitchPersona(id domain.Persona) {
	e.store.SwitchPersona(id)
}
