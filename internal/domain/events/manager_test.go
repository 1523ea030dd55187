package events_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/galaxysim/internal/domain/civilization"
	"github.com/andrescamacho/galaxysim/internal/domain/events"
	"github.com/andrescamacho/galaxysim/internal/domain/galaxy"
	"github.com/andrescamacho/galaxysim/internal/domain/shared"
	"github.com/andrescamacho/galaxysim/test/helpers"
)

// singleSystem builds one star with one occupied planet so every random pick is deterministic
func singleSystem(t *testing.T) (*galaxy.Galaxy, *civilization.Roster, *civilization.Civilization) {
	t.Helper()
	b := helpers.NewGalaxyBuilder()
	b.Star(0, 0, 0)
	home := b.IntelligentPlanet(0, 1000)
	g := b.Build()
	c := helpers.FoundCivilization(g, 0, home, 1000, 1)
	c.Resources = 1001
	c.GrowthRate = 0.02
	roster := civilization.NewRoster()
	require.NoError(t, roster.Add(c))
	return g, roster, c
}

func TestTrigger_NothingFiresAtZeroRates(t *testing.T) {
	g, roster, c := singleSystem(t)
	m := events.NewManager(g, roster, shared.NewRNG(1), events.Rates{})

	for step := 0; step < 100; step++ {
		assert.Empty(t, m.Trigger(step))
	}
	assert.Empty(t, m.Log())
	assert.True(t, c.IsAlive())
}

func TestTriggerCosmic_SupernovaSterilizesWithoutCollapse(t *testing.T) {
	g, roster, c := singleSystem(t)
	m := events.NewManager(g, roster, shared.NewRNG(1), events.Rates{Supernova: 1})

	fired := m.TriggerCosmic(4)

	require.Len(t, fired, 1)
	assert.Equal(t, events.KindSupernova, fired[0].Kind)
	assert.Equal(t, 4, fired[0].Step)
	assert.Equal(t, "Supernova at star 0! All planets sterilized.", fired[0].Message)
	assert.False(t, c.HomePlanet.HasLife)
	assert.False(t, c.HomePlanet.HasIntelligentLife)
	assert.False(t, g.IsOccupied(c.HomePlanet.ID))
	assert.True(t, c.IsAlive())
}

func TestTriggerCosmic_BlackHoleSterilizesWithoutCollapse(t *testing.T) {
	g, roster, c := singleSystem(t)
	m := events.NewManager(g, roster, shared.NewRNG(1), events.Rates{BlackHole: 1})

	fired := m.TriggerCosmic(0)

	require.Len(t, fired, 1)
	assert.Equal(t, "Black hole devoured star 0!", fired[0].Message)
	assert.False(t, g.IsOccupied(c.HomePlanet.ID))
	assert.True(t, c.IsAlive())
}

func TestTriggerCosmic_AsteroidCollapsesOccupant(t *testing.T) {
	g, roster, c := singleSystem(t)
	m := events.NewManager(g, roster, shared.NewRNG(1), events.Rates{AsteroidImpact: 1})

	fired := m.TriggerCosmic(2)

	require.Len(t, fired, 1)
	assert.Equal(t, "Asteroid impact on planet 0!", fired[0].Message)
	require.NotNil(t, fired[0].CivilizationID)
	assert.Equal(t, 0, *fired[0].CivilizationID)
	assert.False(t, c.HomePlanet.HasLife)
	assert.False(t, c.IsAlive())
	assert.Equal(t, civilization.ReasonAsteroidImpact, c.CollapseReason())
}

func TestTriggerCivilization_Revolt(t *testing.T) {
	g, roster, c := singleSystem(t)
	m := events.NewManager(g, roster, shared.NewRNG(1), events.Rates{Revolt: 1})

	fired := m.TriggerCivilization(0)

	require.Len(t, fired, 1)
	assert.Equal(t, "Civilization 0 collapsed due to revolt!", fired[0].Message)
	assert.False(t, c.IsAlive())
	assert.Equal(t, []string{"Collapsed due to internal revolt"}, c.History())
}

func TestTriggerCivilization_Effects(t *testing.T) {
	g, roster, c := singleSystem(t)
	rates := events.Rates{GoldenAge: 1, Plague: 1, ResourceBoom: 1, ResourceCrash: 1}
	m := events.NewManager(g, roster, shared.NewRNG(1), rates)

	fired := m.TriggerCivilization(0)

	require.Len(t, fired, 4)
	assert.InDelta(t, 0.03, c.GrowthRate, 1e-12)
	assert.Equal(t, int64(700), c.Population)
	// boom: 1001 + floor(500.5) = 1501, crash: floor(750.5) = 750
	assert.Equal(t, int64(750), c.Resources)
	assert.Equal(t, []string{
		"Golden Age! Growth rate increased.",
		"Plague! Population reduced.",
		"Resource boom! Resources increased.",
		"Resource crash! Resources halved.",
	}, c.History())
	assert.Equal(t, []string{
		"Civilization 0 entered a Golden Age!",
		"Civilization 0 hit by a plague! Population reduced.",
		"Civilization 0 experienced a resource boom!",
		"Civilization 0 suffered a resource crash!",
	}, m.Log())
}

func TestTriggerCivilization_RevoltDoesNotStopRemainingDraws(t *testing.T) {
	g, roster, c := singleSystem(t)
	m := events.NewManager(g, roster, shared.NewRNG(1), events.Rates{Revolt: 1, Plague: 1})

	fired := m.TriggerCivilization(0)

	require.Len(t, fired, 2)
	assert.False(t, c.IsAlive())
	assert.Equal(t, int64(700), c.Population)
}

func TestTriggerCivilization_SkipsCollapsed(t *testing.T) {
	g, roster, c := singleSystem(t)
	c.Collapse("testing")
	m := events.NewManager(g, roster, shared.NewRNG(1), events.Rates{Plague: 1})

	assert.Empty(t, m.TriggerCivilization(0))
	assert.Equal(t, int64(1000), c.Population)
}

func TestTrigger_LogAccumulatesAcrossCalls(t *testing.T) {
	g, roster, _ := singleSystem(t)
	m := events.NewManager(g, roster, shared.NewRNG(1), events.Rates{BlackHole: 1})

	m.Trigger(0)
	m.Trigger(1)

	entries := m.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, 0, entries[0].Step)
	assert.Equal(t, 1, entries[1].Step)
}

func TestDefaultRates(t *testing.T) {
	rates := events.DefaultRates()

	assert.Equal(t, 0.005, rates.BlackHole)
	assert.Equal(t, 0.02, rates.Revolt)
	assert.Equal(t, 0.01, rates.Plague)
}

func TestFormatLog(t *testing.T) {
	assert.Equal(t, "- a\n- b", events.FormatLog([]string{"a", "b"}))
	assert.Equal(t, "", events.FormatLog(nil))
}
