package connect_test

import (
	"testing"
	"time"

	"github.com/nexuslabs/showrunner/internal/connect"
	"github.com/nexuslabs/showrunner/internal/state"
	"github.com/nexuslabs/showrunner/internal/testutils"
	"github.com/nexuslabs/showrunner/pkg/domain"
)

func newSimulator(t *testing.T) (*connect.Simulator, *state.Store, *testutils.FakeScheduler) {
	t.Helper()
	store := state.New()
	sched := testutils.NewFakeScheduler()
	sim := connect.NewSimulator(store, connect.WithScheduler(sched))
	return sim, store, sched
}

// Delays from DefaultDelays, rounded up generously for Advance calls.
const hop = 2 * time.Second

func TestSimulator_HappyPath(t *testing.T) {
	sim, store, sched := newSimulator(t)

	var phases []domain.ConnectionStatus
	store.Bus().Subscribe(domain.EventConnectionChanged, func(payload any) {
		phases = append(phases, payload.(domain.ConnectionChanged).Status)
	})

	if _, ok := sim.Show(domain.PlatformSlack); !ok {
		t.Fatal("Show rejected a valid platform")
	}

	if _, phase, _ := sim.Current(); phase != domain.StatusLoading {
		t.Fatalf("expected loading, got %s", phase)
	}

	sched.Advance(hop)
	if _, phase, _ := sim.Current(); phase != domain.StatusConsent {
		t.Fatalf("expected consent, got %s", phase)
	}

	// Consent waits for the user indefinitely.
	sched.Advance(10 * hop)
	if _, phase, _ := sim.Current(); phase != domain.StatusConsent {
		t.Fatalf("consent must not auto-advance, got %s", phase)
	}

	sim.Authorize()
	sched.Advance(hop) // connecting -> scanning
	sched.Advance(hop) // scanning -> connected

	if store.Connection(domain.PlatformSlack) != domain.StatusConnected {
		t.Error("expected connected recorded in the store")
	}
	if _, _, active := sim.Current(); active {
		t.Error("expected no in-flight run after connecting")
	}

	want := []domain.ConnectionStatus{
		domain.StatusLoading,
		domain.StatusConsent,
		domain.StatusConnecting,
		domain.StatusScanning,
		domain.StatusConnected,
	}
	if len(phases) != len(want) {
		t.Fatalf("expected %d phase events, got %d (%v)", len(want), len(phases), phases)
	}
	for i := range want {
		if phases[i] != want[i] {
			t.Errorf("phase %d: expected %s, got %s", i, want[i], phases[i])
		}
	}
}

func TestSimulator_ShowSupersedesInFlightRun(t *testing.T) {
	sim, store, sched := newSimulator(t)

	sim.Show(domain.PlatformSlack)
	sched.Advance(hop)
	sim.Authorize()
	// Slack is mid-flight (connecting). Starting Jira must cancel it.
	sim.Show(domain.PlatformJira)

	// Run Jira to completion; any stale Slack timers fire along the way
	// and must land as no-ops.
	sched.Advance(hop)
	sim.Authorize()
	sched.Advance(hop)
	sched.Advance(hop)

	if got := store.Connection(domain.PlatformSlack); got != domain.StatusNotConnected {
		t.Errorf("superseded run leaked a side effect: %s", got)
	}
	if got := store.Connection(domain.PlatformJira); got != domain.StatusConnected {
		t.Errorf("expected jira connected, got %s", got)
	}
}

func TestSimulator_CloseBeforeConnectedLeavesNoTrace(t *testing.T) {
	sim, store, sched := newSimulator(t)

	sim.Show(domain.PlatformGmail)
	sched.Advance(hop)
	sim.Authorize()
	sim.Close()

	// Drain anything that was scheduled before the close.
	sched.Advance(10 * hop)

	if got := store.Connection(domain.PlatformGmail); got != domain.StatusNotConnected {
		t.Errorf("closed run must not write to the store, got %s", got)
	}
	if _, _, active := sim.Current(); active {
		t.Error("expected no in-flight run after close")
	}
}

func TestSimulator_CancelAtConsent(t *testing.T) {
	sim, store, sched := newSimulator(t)

	sim.Show(domain.PlatformNotion)
	sched.Advance(hop)
	sim.Cancel()
	sched.Advance(10 * hop)

	if got := store.Connection(domain.PlatformNotion); got != domain.StatusNotConnected {
		t.Errorf("cancelled run must not write to the store, got %s", got)
	}
}

func TestSimulator_AuthorizeOutsideConsentIsNoop(t *testing.T) {
	sim, _, sched := newSimulator(t)

	sim.Authorize() // no run at all

	sim.Show(domain.PlatformSlack)
	sim.Authorize() // still loading
	if _, phase, _ := sim.Current(); phase != domain.StatusLoading {
		t.Errorf("authorize during loading must not advance, got %s", phase)
	}
	sched.Advance(hop)
	if _, phase, _ := sim.Current(); phase != domain.StatusConsent {
		t.Errorf("expected consent, got %s", phase)
	}
}

func TestSimulator_InvalidPlatformIsSilentNoop(t *testing.T) {
	sim, _, _ := newSimulator(t)

	if _, ok := sim.Show("myspace"); ok {
		t.Error("expected invalid platform to be rejected")
	}
	if _, _, active := sim.Current(); active {
		t.Error("no run may start for an invalid platform")
	}
}

func TestSimulator_RestartSamePlatform(t *testing.T) {
	sim, store, sched := newSimulator(t)

	sim.Show(domain.PlatformSlack)
	sched.Advance(hop)
	sim.Show(domain.PlatformSlack) // restart from scratch

	if _, phase, _ := sim.Current(); phase != domain.StatusLoading {
		t.Fatalf("restart must begin at loading, got %s", phase)
	}
	sched.Advance(hop)
	sim.Authorize()
	sched.Advance(hop)
	sched.Advance(hop)

	if got := store.Connection(domain.PlatformSlack); got != domain.StatusConnected {
		t.Errorf("expected connected after restart, got %s", got)
	}
}
