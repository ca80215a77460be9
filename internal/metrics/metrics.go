// Package metrics exposes prometheus collectors for the orchestration
// engine. The collectors observe the state bus; components never talk to
// prometheus directly.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/nexuslabs/showrunner/internal/state"
	"github.com/nexuslabs/showrunner/pkg/domain"
)

// Set bundles the engine's collectors.
type Set struct {
	Resolves    *prometheus.CounterVec
	Events      *prometheus.CounterVec
	Simulations *prometheus.CounterVec
	ArcSteps    prometheus.Counter
}

// NewSet creates and registers the collectors on the given registerer.
func NewSet(reg prometheus.Registerer) *Set {
	s := &Set{
		Resolves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "showrunner",
			Name:      "resolves_total",
			Help:      "Queries resolved, by tier.",
		}, []string{"tier"}),
		Events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "showrunner",
			Name:      "events_total",
			Help:      "Events published on the state bus, by name.",
		}, []string{"event"}),
		Simulations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "showrunner",
			Name:      "connection_events_total",
			Help:      "Connection status changes, by platform and status.",
		}, []string{"platform", "status"}),
		ArcSteps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "showrunner",
			Name:      "arc_steps_total",
			Help:      "Guided arc steps applied.",
		}),
	}
	reg.MustRegister(s.Resolves, s.Events, s.Simulations, s.ArcSteps)
	return s
}

// ObserveResolve records a resolution outcome.
func (s *Set) ObserveResolve(resp domain.Response) {
	s.Resolves.WithLabelValues(strconv.Itoa(int(resp.Tier))).Inc()
}

// Watch subscribes the collectors to the bus. Counting happens inline in
// the synchronous fan-out; the handlers must stay cheap.
func (s *Set) Watch(bus *state.Bus) {
	counted := []domain.EventName{
		domain.EventIndustryChanged,
		domain.EventPersonaChanged,
		domain.EventThemeChanged,
		domain.EventAIModeChanged,
		domain.EventArcChanged,
		domain.EventStepChanged,
		domain.EventConnectionChanged,
		domain.EventNavigate,
		domain.EventNarrate,
		domain.EventHighlight,
	}
	for _, name := range counted {
		event := name
		bus.Subscribe(event, func(any) {
			s.Events.WithLabelValues(string(event)).Inc()
		})
	}

	bus.Subscribe(domain.EventConnectionChanged, func(payload any) {
		if c, ok := payload.(domain.ConnectionChanged); ok {
			s.Simulations.WithLabelValues(string(c.Platform), string(c.Status)).Inc()
		}
	})
	bus.Subscribe(domain.EventNarrate, func(any) {
		s.ArcSteps.Inc()
	})
}
