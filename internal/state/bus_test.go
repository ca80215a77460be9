package state_test

import (
	"testing"

	"github.com/nexuslabs/showrunner/internal/state"
	"github.com/nexuslabs/showrunner/pkg/domain"
)

func TestBus_OrderedFanout(t *testing.T) {
	bus := state.NewBus(nil)

	var order []int
	bus.Subscribe(domain.EventThemeChanged, func(any) { order = append(order, 1) })
	bus.Subscribe(domain.EventThemeChanged, func(any) { order = append(order, 2) })
	bus.Subscribe(domain.EventThemeChanged, func(any) { order = append(order, 3) })

	bus.Publish(domain.EventThemeChanged, domain.ThemeChanged{Theme: domain.ThemeLight})

	if len(order) != 3 {
		t.Fatalf("expected 3 deliveries, got %d", len(order))
	}
	for i, got := range order {
		if got != i+1 {
			t.Errorf("delivery %d out of registration order: got %d", i, got)
		}
	}
}

func TestBus_PublishWithoutSubscribersIsNoop(t *testing.T) {
	bus := state.NewBus(nil)
	// Must not panic or error.
	bus.Publish(domain.EventNavigate, domain.Navigate{Page: "dashboard"})
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := state.NewBus(nil)

	calls := 0
	sub := bus.Subscribe(domain.EventPersonaChanged, func(any) { calls++ })
	bus.Publish(domain.EventPersonaChanged, domain.PersonaChanged{Persona: domain.PersonaOps})
	bus.Unsubscribe(sub)
	bus.Publish(domain.EventPersonaChanged, domain.PersonaChanged{Persona: domain.PersonaCEO})

	if calls != 1 {
		t.Errorf("expected 1 call after unsubscribe, got %d", calls)
	}
}

func TestBus_SynchronousDelivery(t *testing.T) {
	bus := state.NewBus(nil)

	delivered := false
	bus.Subscribe(domain.EventHighlight, func(payload any) {
		if _, ok := payload.(domain.Highlight); !ok {
			t.Errorf("unexpected payload type %T", payload)
		}
		delivered = true
	})

	bus.Publish(domain.EventHighlight, domain.Highlight{Target: "revenue-tile"})

	// Synchronous contract: delivery completes before Publish returns.
	if !delivered {
		t.Error("expected handler to run before Publish returned")
	}
}
