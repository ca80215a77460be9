package arc

import (
	"io"
	"log/slog"
	"sync"

	"github.com/nexuslabs/showrunner/internal/state"
	"github.com/nexuslabs/showrunner/pkg/domain"
	"github.com/nexuslabs/showrunner/pkg/ports"
)

// pending is a step whose narration and highlight are parked until the
// rendering layer reports the target page ready.
type pending struct {
	page  domain.Page
	index int
}

// Player maintains the read pointer into the active arc. The store owns
// the pointer itself; the player owns the bounds, the page handshake, and
// auto-advance. Restarting or exiting always cancels pending work first,
// so the player is safe to redrive at any moment.
type Player struct {
	mu       sync.Mutex
	registry *Registry
	store    *state.Store
	sched    ports.Scheduler
	logger   *slog.Logger

	gen         uint64
	currentPage domain.Page
	waiting     *pending
	autoCancel  ports.CancelTimer
}

// Option configures the player.
type Option func(*Player)

// WithScheduler replaces the process-clock scheduler.
func WithScheduler(s ports.Scheduler) Option {
	return func(p *Player) { p.sched = s }
}

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Player) { p.logger = logger }
}

// NewPlayer wires a player to the arc registry and the state store.
func NewPlayer(registry *Registry, store *state.Store, opts ...Option) *Player {
	p := &Player{
		registry: registry,
		store:    store,
		sched:    ports.RealScheduler{},
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return p
}

// Start begins a guided run of the given arc at step 0. An unregistered
// arc id refuses to start and changes nothing; the store's own StartArc
// stays unconditional, so validation lives here where the registry is.
func (p *Player) Start(id domain.ArcID) bool {
	a, ok := p.registry.Load(id)
	if !ok {
		p.logger.Debug("unknown arc", "id", string(id))
		return false
	}

	p.store.StartArc(a.ID)
	p.applyStep(a, 0)
	return true
}

// JumpToArc is Start under the name the keyboard shortcuts use.
func (p *Player) JumpToArc(id domain.ArcID) bool {
	return p.Start(id)
}

// Next advances one step. On the last step it ends the arc instead of
// overrunning the script: mode returns to free and the pointer clears.
func (p *Player) Next() {
	a, ok := p.activeArc()
	if !ok {
		return
	}

	if p.store.CurrentStep() >= a.LastStep() {
		p.logger.Info("arc finished", "arc", string(a.ID))
		p.Exit()
		return
	}
	step := p.store.NextStep()
	p.applyStep(a, step)
}

// Prev steps back, delegating the floor-at-0 behavior to the store.
func (p *Player) Prev() {
	a, ok := p.activeArc()
	if !ok {
		return
	}

	before := p.store.CurrentStep()
	step := p.store.PrevStep()
	if step == before {
		return
	}
	p.applyStep(a, step)
}

// Exit forces free mode from any position. Connections and the active
// dataset are untouched; pending page waits and auto-advance die here.
func (p *Player) Exit() {
	p.mu.Lock()
	p.supersedeLocked()
	p.mu.Unlock()

	p.store.EndArc()
}

// PageReady is the rendering layer reporting that a page finished
// mounting. If a step was parked on that page, its narration and
// highlight apply now.
func (p *Player) PageReady(page domain.Page) {
	p.mu.Lock()
	p.currentPage = page
	if p.waiting == nil || p.waiting.page != page {
		p.mu.Unlock()
		return
	}
	index := p.waiting.index
	p.waiting = nil
	p.mu.Unlock()

	a, ok := p.activeArc()
	if !ok || index > a.LastStep() {
		return
	}
	p.deliverStep(a, index)
}

// CurrentPage returns the page the player believes is showing.
func (p *Player) CurrentPage() domain.Page {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.currentPage
}

func (p *Player) activeArc() (*domain.Arc, bool) {
	id, ok := p.store.CurrentArc()
	if !ok {
		return nil, false
	}
	return p.registry.Load(id)
}

// supersedeLocked invalidates parked steps and pending auto-advance.
// Callers hold the lock.
func (p *Player) supersedeLocked() {
	p.gen++
	p.waiting = nil
	if p.autoCancel != nil {
		p.autoCancel()
		p.autoCancel = nil
	}
}

// applyStep routes a step: same page applies immediately, a page change
// emits a navigation intent and parks the rest until PageReady.
func (p *Player) applyStep(a *domain.Arc, index int) {
	step := a.Steps[index]

	p.mu.Lock()
	p.supersedeLocked()
	samePage := step.TargetPage == p.currentPage
	if !samePage {
		p.waiting = &pending{page: step.TargetPage, index: index}
	}
	p.mu.Unlock()

	if samePage {
		p.deliverStep(a, index)
		return
	}
	p.store.Bus().Publish(domain.EventNavigate, domain.Navigate{Page: step.TargetPage})
}

// deliverStep publishes narration and highlight for a step and arms
// auto-advance when the script asks for it.
func (p *Player) deliverStep(a *domain.Arc, index int) {
	step := a.Steps[index]

	p.store.Bus().Publish(domain.EventNarrate, domain.Narrate{
		Arc:       a.ID,
		Step:      index,
		Narration: step.Narration,
	})
	if step.HighlightTarget != "" {
		p.store.Bus().Publish(domain.EventHighlight, domain.Highlight{Target: step.HighlightTarget})
	}

	if step.AutoAdvanceAfter <= 0 {
		return
	}

	p.mu.Lock()
	gen := p.gen
	p.autoCancel = p.sched.After(step.AutoAdvanceAfter, func() {
		p.mu.Lock()
		stale := p.gen != gen
		p.mu.Unlock()
		if stale {
			return
		}
		p.Next()
	})
	p.mu.Unlock()
}
