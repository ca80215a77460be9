package state_test

import (
	"context"
	"errors"
	"testing"

	"github.com/nexuslabs/showrunner/internal/state"
	"github.com/nexuslabs/showrunner/pkg/adapters/prefs/memory"
	"github.com/nexuslabs/showrunner/pkg/domain"
	"github.com/nexuslabs/showrunner/pkg/ports"
)

func TestStore_Defaults(t *testing.T) {
	s := state.New()
	snap := s.Snapshot()

	if snap.Industry != domain.IndustryConsulting {
		t.Errorf("expected default industry consulting, got %s", snap.Industry)
	}
	if snap.Persona != domain.PersonaCEO {
		t.Errorf("expected default persona ceo, got %s", snap.Persona)
	}
	if snap.DemoMode != domain.ModeFree {
		t.Errorf("expected free mode, got %s", snap.DemoMode)
	}
	if snap.AIMode != domain.AIScripted {
		t.Errorf("expected scripted AI mode, got %s", snap.AIMode)
	}
	if snap.Theme != domain.ThemeDark {
		t.Errorf("expected dark theme, got %s", snap.Theme)
	}
}

func TestStore_SwitchIndustry(t *testing.T) {
	prefs := memory.NewStore()
	s := state.New(state.WithPrefs(prefs))

	var events []domain.IndustryChanged
	s.Bus().Subscribe(domain.EventIndustryChanged, func(payload any) {
		events = append(events, payload.(domain.IndustryChanged))
	})

	s.SwitchIndustry(domain.IndustryTech)

	if got := s.Industry(); got != domain.IndustryTech {
		t.Errorf("expected industry tech, got %s", got)
	}
	if len(events) != 1 || events[0].Industry != domain.IndustryTech {
		t.Errorf("expected one industryChange event with tech, got %v", events)
	}
	persisted, err := prefs.Get(context.Background(), ports.PrefIndustry)
	if err != nil {
		t.Fatalf("expected persisted industry, got %v", err)
	}
	if persisted != "tech" {
		t.Errorf("expected persisted value 'tech', got %q", persisted)
	}
}

func TestStore_SwitchIndustry_InvalidIsSilentNoop(t *testing.T) {
	prefs := memory.NewStore()
	s := state.New(state.WithPrefs(prefs))

	fired := false
	s.Bus().Subscribe(domain.EventIndustryChanged, func(any) { fired = true })

	s.SwitchIndustry("blockchain")

	if got := s.Industry(); got != domain.IndustryConsulting {
		t.Errorf("state changed on invalid id: %s", got)
	}
	if fired {
		t.Error("event fired for invalid id")
	}
	if _, err := prefs.Get(context.Background(), ports.PrefIndustry); !errors.Is(err, domain.ErrPrefNotFound) {
		t.Error("invalid id must not be persisted")
	}
}

func TestStore_SwitchPersona_InvalidIsSilentNoop(t *testing.T) {
	s := state.New()

	fired := false
	s.Bus().Subscribe(domain.EventPersonaChanged, func(any) { fired = true })

	s.SwitchPersona("intern")

	if got := s.Persona(); got != domain.PersonaCEO {
		t.Errorf("state changed on invalid persona: %s", got)
	}
	if fired {
		t.Error("event fired for invalid persona")
	}
}

func TestStore_PersonaRoundTrip(t *testing.T) {
	prefs := memory.NewStore()

	first := state.New(state.WithPrefs(prefs))
	first.SwitchPersona(domain.PersonaOps)

	// Reinitializing over the same prefs backend hydrates the persona.
	second := state.New(state.WithPrefs(prefs))
	if got := second.Persona(); got != domain.PersonaOps {
		t.Errorf("expected persona ops after rehydrate, got %s", got)
	}
}

func TestStore_HydrateIgnoresInvalidPersistedValues(t *testing.T) {
	prefs := memory.NewStore()
	ctx := context.Background()
	_ = prefs.Set(ctx, ports.PrefIndustry, "crypto")
	_ = prefs.Set(ctx, ports.PrefTheme, "solarized")

	s := state.New(state.WithPrefs(prefs))
	if got := s.Industry(); got != domain.IndustryConsulting {
		t.Errorf("invalid persisted industry should be ignored, got %s", got)
	}
	if got := s.Theme(); got != domain.ThemeDark {
		t.Errorf("invalid persisted theme should be ignored, got %s", got)
	}
}

func TestStore_StartArcAndSteps(t *testing.T) {
	s := state.New()

	s.StartArc("executive-overview")

	if s.DemoMode() != domain.ModeGuided {
		t.Error("expected guided mode after StartArc")
	}
	if arc, ok := s.CurrentArc(); !ok || arc != "executive-overview" {
		t.Errorf("expected current arc set, got %q ok=%v", arc, ok)
	}
	if s.CurrentStep() != 0 {
		t.Errorf("expected step reset to 0, got %d", s.CurrentStep())
	}

	t.Run("NextStep_Unbounded", func(t *testing.T) {
		if got := s.NextStep(); got != 1 {
			t.Errorf("expected step 1, got %d", got)
		}
		if got := s.NextStep(); got != 2 {
			t.Errorf("expected step 2, got %d", got)
		}
	})

	t.Run("PrevStep_FloorsAtZero", func(t *testing.T) {
		s.PrevStep()
		s.PrevStep()
		if got := s.CurrentStep(); got != 0 {
			t.Errorf("expected step 0, got %d", got)
		}
		// Repeated PrevStep from 0 stays at 0 and fires nothing.
		fired := false
		s.Bus().Subscribe(domain.EventStepChanged, func(any) { fired = true })
		if got := s.PrevStep(); got != 0 {
			t.Errorf("expected floor at 0, got %d", got)
		}
		if fired {
			t.Error("PrevStep at 0 must not fire a step event")
		}
	})
}

func TestStore_EndArc(t *testing.T) {
	s := state.New()
	s.StartArc("ops-deep-dive")
	s.NextStep()

	s.EndArc()

	if s.DemoMode() != domain.ModeFree {
		t.Error("expected free mode after EndArc")
	}
	if _, ok := s.CurrentArc(); ok {
		t.Error("expected current arc cleared")
	}
	if s.CurrentStep() != 0 {
		t.Error("expected step cleared")
	}
}

func TestStore_Toggles(t *testing.T) {
	prefs := memory.NewStore()
	s := state.New(state.WithPrefs(prefs))

	if got := s.ToggleAIMode(); got != domain.AILive {
		t.Errorf("expected live after toggle, got %s", got)
	}
	if got := s.ToggleAIMode(); got != domain.AIScripted {
		t.Errorf("expected scripted after second toggle, got %s", got)
	}

	if got := s.ToggleTheme(); got != domain.ThemeLight {
		t.Errorf("expected light after toggle, got %s", got)
	}
	persisted, err := prefs.Get(context.Background(), ports.PrefTheme)
	if err != nil || persisted != "light" {
		t.Errorf("expected theme persisted as light, got %q err=%v", persisted, err)
	}
	// AI mode is session-only.
	if _, err := prefs.Get(context.Background(), "ai_mode"); !errors.Is(err, domain.ErrPrefNotFound) {
		t.Error("AI mode must not be persisted")
	}
}

func TestStore_Connections(t *testing.T) {
	s := state.New()

	if got := s.Connection(domain.PlatformSlack); got != domain.StatusNotConnected {
		t.Errorf("expected not-connected for unset platform, got %s", got)
	}

	var events []domain.ConnectionChanged
	s.Bus().Subscribe(domain.EventConnectionChanged, func(payload any) {
		events = append(events, payload.(domain.ConnectionChanged))
	})

	s.SetConnection(domain.PlatformSlack, domain.StatusConnected)

	if got := s.Connection(domain.PlatformSlack); got != domain.StatusConnected {
		t.Errorf("expected connected, got %s", got)
	}
	if len(events) != 1 || events[0].Platform != domain.PlatformSlack {
		t.Errorf("expected one connection event, got %v", events)
	}

	t.Run("InvalidPlatformIsSilentNoop", func(t *testing.T) {
		s.SetConnection("myspace", domain.StatusConnected)
		if len(events) != 1 {
			t.Error("event fired for invalid platform")
		}
	})

	t.Run("Reset", func(t *testing.T) {
		s.ResetConnections()
		if got := s.Connection(domain.PlatformSlack); got != domain.StatusNotConnected {
			t.Errorf("expected reset to clear results, got %s", got)
		}
	})
}

func TestStore_SubscriberSeesUpdatedState(t *testing.T) {
	s := state.New()

	// Ordering guarantee: by the time a subscriber is notified, the store
	// already reflects the change.
	s.Bus().Subscribe(domain.EventIndustryChanged, func(any) {
		if got := s.Industry(); got != domain.IndustryHospitality {
			t.Errorf("subscriber observed stale state: %s", got)
		}
	})
	s.SwitchIndustry(domain.IndustryHospitality)
}
