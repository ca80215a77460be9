package showrunner_test

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexuslabs/showrunner"
	"github.com/nexuslabs/showrunner/internal/testutils"
	prefsmem "github.com/nexuslabs/showrunner/pkg/adapters/prefs/memory"
	"github.com/nexuslabs/showrunner/pkg/domain"
	"github.com/nexuslabs/showrunner/pkg/ports"
)

func TestNew_Defaults(t *testing.T) {
	eng, err := showrunner.New()
	require.NoError(t, err)

	snap := eng.Store().Snapshot()
	assert.Equal(t, domain.IndustryConsulting, snap.Industry)
	assert.Equal(t, domain.PersonaCEO, snap.Persona)
	assert.Equal(t, domain.ModeFree, snap.DemoMode)

	// The default industry's dataset is installed at construction.
	ds := eng.Store().ActiveDataset()
	require.NotNil(t, ds)
	assert.Equal(t, domain.IndustryConsulting, ds.Industry)

	assert.Len(t, eng.Arcs(), 3)
	assert.Equal(t, []domain.Industry{
		domain.IndustryConsulting,
		domain.IndustryTech,
		domain.IndustryHospitality,
	}, eng.Industries())
}

func TestEngine_AskUsesActiveDataset(t *testing.T) {
	eng, err := showrunner.New()
	require.NoError(t, err)

	resp := eng.Ask("Prep me for this meeting")
	assert.Equal(t, domain.TierShowcase, resp.Tier)
	assert.Contains(t, resp.Content, "Northwind QBR prep")

	require.True(t, eng.SwitchIndustry(domain.IndustryTech))

	resp = eng.Ask("Prep me for this meeting")
	assert.Equal(t, domain.TierShowcase, resp.Tier)
	assert.Contains(t, resp.Content, "Incident 4217 retro")
}

func TestEngine_SwitchIndustryUnknownChangesNothing(t *testing.T) {
	eng, err := showrunner.New()
	require.NoError(t, err)
	before := eng.Store().ActiveDataset()

	assert.False(t, eng.SwitchIndustry("aerospace"))
	assert.Equal(t, domain.IndustryConsulting, eng.Store().Industry())
	assert.Same(t, before, eng.Store().ActiveDataset())
}

func TestEngine_PrefsSurviveRestart(t *testing.T) {
	prefs := prefsmem.NewStore()

	eng, err := showrunner.New(showrunner.WithPrefsStore(prefs))
	require.NoError(t, err)
	eng.SwitchIndustry(domain.IndustryHospitality)
	eng.SwitchPersona(domain.PersonaOps)

	// A second engine on the same backend hydrates the persisted selection
	// and installs the matching dataset.
	eng2, err := showrunner.New(showrunner.WithPrefsStore(prefs))
	require.NoError(t, err)
	assert.Equal(t, domain.IndustryHospitality, eng2.Store().Industry())
	assert.Equal(t, domain.PersonaOps, eng2.Store().Persona())
	require.NotNil(t, eng2.Store().ActiveDataset())
	assert.Equal(t, domain.IndustryHospitality, eng2.Store().ActiveDataset().Industry)
}

func TestEngine_HydrationIgnoresGarbagePrefs(t *testing.T) {
	prefs := prefsmem.NewStore()
	ctx := context.Background()
	require.NoError(t, prefs.Set(ctx, ports.PrefIndustry, "blockchain"))
	require.NoError(t, prefs.Set(ctx, ports.PrefPersona, "intern"))

	eng, err := showrunner.New(showrunner.WithPrefsStore(prefs))
	require.NoError(t, err)
	assert.Equal(t, domain.IndustryConsulting, eng.Store().Industry())
	assert.Equal(t, domain.PersonaCEO, eng.Store().Persona())
}

func TestEngine_GuidedRunEndToEnd(t *testing.T) {
	sched := testutils.NewFakeScheduler()
	eng, err := showrunner.New(showrunner.WithScheduler(sched))
	require.NoError(t, err)

	var narrations []domain.Narrate
	eng.Store().Bus().Subscribe(domain.EventNarrate, func(p any) {
		narrations = append(narrations, p.(domain.Narrate))
	})

	require.True(t, eng.Player().Start("executive-overview"))
	eng.Player().PageReady("dashboard")
	require.Len(t, narrations, 1)

	eng.Player().Exit()
	assert.Equal(t, domain.ModeFree, eng.Store().DemoMode())
}

func TestEngine_SimulationWritesOnlyConnected(t *testing.T) {
	sched := testutils.NewFakeScheduler()
	eng, err := showrunner.New(showrunner.WithScheduler(sched))
	require.NoError(t, err)

	_, ok := eng.Simulator().Show(domain.PlatformSlack)
	require.True(t, ok)
	sched.Advance(time.Second) // loading -> consent
	eng.Simulator().Authorize()
	sched.Advance(2 * time.Second) // connecting -> scanning
	sched.Advance(2 * time.Second) // scanning -> connected

	assert.Equal(t, domain.StatusConnected, eng.Store().Connection(domain.PlatformSlack))
}

func TestWithMetrics_CountsResolves(t *testing.T) {
	reg := prometheus.NewRegistry()
	eng, err := showrunner.New(showrunner.WithMetrics(reg))
	require.NoError(t, err)

	eng.Ask("prep me for this meeting")
	eng.Ask("how are margins looking")

	families, err := reg.Gather()
	require.NoError(t, err)

	var total float64
	for _, mf := range families {
		if mf.GetName() == "showrunner_resolves_total" {
			for _, m := range mf.GetMetric() {
				total += m.GetCounter().GetValue()
			}
		}
	}
	assert.Equal(t, 2.0, total)
}
