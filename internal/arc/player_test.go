package arc_test

import (
	"testing"
	"time"

	"github.com/nexuslabs/showrunner/internal/arc"
	"github.com/nexuslabs/showrunner/internal/state"
	"github.com/nexuslabs/showrunner/internal/testutils"
	"github.com/nexuslabs/showrunner/pkg/domain"
)

type recorder struct {
	navigations []domain.Navigate
	narrations  []domain.Narrate
	highlights  []domain.Highlight
}

func record(store *state.Store) *recorder {
	r := &recorder{}
	store.Bus().Subscribe(domain.EventNavigate, func(p any) {
		r.navigations = append(r.navigations, p.(domain.Navigate))
	})
	store.Bus().Subscribe(domain.EventNarrate, func(p any) {
		r.narrations = append(r.narrations, p.(domain.Narrate))
	})
	store.Bus().Subscribe(domain.EventHighlight, func(p any) {
		r.highlights = append(r.highlights, p.(domain.Highlight))
	})
	return r
}

func newPlayer(t *testing.T) (*arc.Player, *state.Store, *testutils.FakeScheduler, *recorder) {
	t.Helper()
	reg, err := arc.NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}
	store := state.New()
	sched := testutils.NewFakeScheduler()
	rec := record(store)
	player := arc.NewPlayer(reg, store, arc.WithScheduler(sched))
	return player, store, sched, rec
}

func TestRegistry_ParsesEmbeddedScripts(t *testing.T) {
	reg, err := arc.NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	arcs := reg.Arcs()
	if len(arcs) != 3 {
		t.Fatalf("expected 3 arcs, got %d", len(arcs))
	}
	for _, a := range arcs {
		if len(a.Steps) == 0 {
			t.Errorf("arc %s has no steps", a.ID)
		}
		if !a.Audience.Valid() {
			t.Errorf("arc %s has invalid audience %q", a.ID, a.Audience)
		}
	}

	if _, ok := reg.Load("executive-overview"); !ok {
		t.Error("expected executive-overview registered")
	}
}

func TestPlayer_StartEmitsNavigationAndDefersNarration(t *testing.T) {
	player, store, _, rec := newPlayer(t)

	if !player.Start("executive-overview") {
		t.Fatal("Start refused a registered arc")
	}

	if store.DemoMode() != domain.ModeGuided {
		t.Error("expected guided mode")
	}
	if len(rec.navigations) != 1 || rec.navigations[0].Page != "dashboard" {
		t.Fatalf("expected navigation to dashboard, got %v", rec.navigations)
	}
	// Narration waits for the page handshake.
	if len(rec.narrations) != 0 {
		t.Fatalf("narration must be deferred until PageReady, got %v", rec.narrations)
	}

	player.PageReady("dashboard")
	if len(rec.narrations) != 1 || rec.narrations[0].Step != 0 {
		t.Fatalf("expected step 0 narration after PageReady, got %v", rec.narrations)
	}
	if len(rec.highlights) != 1 || rec.highlights[0].Target != "revenue-tile" {
		t.Fatalf("expected revenue-tile highlight, got %v", rec.highlights)
	}
}

func TestPlayer_SamePageStepAppliesImmediately(t *testing.T) {
	player, _, _, rec := newPlayer(t)

	player.Start("executive-overview")
	player.PageReady("dashboard")

	// Step 1 targets the same page; no second navigation, narration lands
	// without a handshake.
	player.Next()

	if len(rec.navigations) != 1 {
		t.Errorf("expected no extra navigation for a same-page step, got %v", rec.navigations)
	}
	if len(rec.narrations) != 2 || rec.narrations[1].Step != 1 {
		t.Fatalf("expected step 1 narration immediately, got %v", rec.narrations)
	}
}

func TestPlayer_NextPastLastStepEndsArc(t *testing.T) {
	player, store, _, _ := newPlayer(t)

	reg, _ := arc.NewRegistry()
	a, _ := reg.Load("first-week")

	player.Start("first-week")
	player.PageReady("people")

	// Walk the arc: the player follows page changes as the host acks them.
	for i := 1; i <= a.LastStep(); i++ {
		player.Next()
		player.PageReady(a.Steps[i].TargetPage)
	}
	// One more Next from the last step ends the arc.
	player.Next()

	if store.DemoMode() != domain.ModeFree {
		t.Error("expected free mode after the arc ended")
	}
	if _, ok := store.CurrentArc(); ok {
		t.Error("expected current arc cleared")
	}
}

func TestPlayer_PrevDelegatesFloorToStore(t *testing.T) {
	player, store, _, _ := newPlayer(t)

	player.Start("ops-deep-dive")
	player.PageReady("actions")
	player.Next()

	player.Prev()
	if store.CurrentStep() != 0 {
		t.Errorf("expected step 0, got %d", store.CurrentStep())
	}
	player.Prev()
	player.Prev()
	if store.CurrentStep() != 0 {
		t.Errorf("expected floor at 0, got %d", store.CurrentStep())
	}
}

func TestPlayer_UnknownArcRefusesToStart(t *testing.T) {
	player, store, _, rec := newPlayer(t)

	if player.Start("director-cut") {
		t.Error("expected unknown arc to be refused")
	}
	if store.DemoMode() != domain.ModeFree {
		t.Error("state must be unchanged for an unknown arc")
	}
	if len(rec.navigations) != 0 {
		t.Error("no intents may fire for an unknown arc")
	}
}

func TestPlayer_ExitFromAnyPosition(t *testing.T) {
	player, store, _, _ := newPlayer(t)

	store.SetConnection(domain.PlatformSlack, domain.StatusConnected)
	player.Start("executive-overview")
	player.PageReady("dashboard")
	player.Next()

	player.Exit()

	if store.DemoMode() != domain.ModeFree {
		t.Error("expected free mode after exit")
	}
	if store.Connection(domain.PlatformSlack) != domain.StatusConnected {
		t.Error("exit must not touch connections")
	}
}

func TestPlayer_AutoAdvance(t *testing.T) {
	player, store, sched, rec := newPlayer(t)

	player.Start("executive-overview")
	player.PageReady("dashboard")
	player.Next() // step 1 carries auto_advance_after: 6s

	sched.Advance(10 * time.Second)

	// Step 2 targets the meetings page, so auto-advance lands as a
	// navigation intent.
	if store.CurrentStep() != 2 {
		t.Fatalf("expected auto-advance to step 2, got %d", store.CurrentStep())
	}
	last := rec.navigations[len(rec.navigations)-1]
	if last.Page != "meetings" {
		t.Errorf("expected navigation to meetings, got %s", last.Page)
	}
}

func TestPlayer_ExitCancelsAutoAdvance(t *testing.T) {
	player, store, sched, _ := newPlayer(t)

	player.Start("executive-overview")
	player.PageReady("dashboard")
	player.Next() // arms auto-advance
	player.Exit()

	sched.Advance(time.Minute)

	if store.DemoMode() != domain.ModeFree {
		t.Error("stale auto-advance resumed a guided run")
	}
	if _, ok := store.CurrentArc(); ok {
		t.Error("stale auto-advance restored an arc pointer")
	}
}

func TestPlayer_StalePageReadyIsIgnored(t *testing.T) {
	player, _, _, rec := newPlayer(t)

	player.Start("executive-overview")
	// Host acks a page nothing is waiting on.
	player.PageReady("settings")

	if len(rec.narrations) != 0 {
		t.Errorf("narration fired for the wrong page: %v", rec.narrations)
	}

	// The real ack still works afterwards.
	player.PageReady("dashboard")
	if len(rec.narrations) != 1 {
		t.Errorf("expected narration after the correct page ack, got %v", rec.narrations)
	}
}
