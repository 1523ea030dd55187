package simulation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/galaxysim/internal/application/simulation"
	"github.com/andrescamacho/galaxysim/internal/domain/civilization"
	"github.com/andrescamacho/galaxysim/internal/domain/events"
	"github.com/andrescamacho/galaxysim/test/helpers"
)

func crowdedConfig(seed int64, civilizations int) simulation.Config {
	cfg := simulation.DefaultConfig()
	cfg.Seed = seed
	cfg.Civilizations = civilizations
	return cfg
}

func TestNew_SeedsRequestedCivilizations(t *testing.T) {
	sim := simulation.New(crowdedConfig(1, 4), simulation.WithGalaxy(helpers.NewCrowdedGalaxy(6)))

	civs := sim.Civilizations()
	require.Len(t, civs, 4)
	for i, c := range civs {
		assert.Equal(t, i, c.ID)
		assert.True(t, c.HomePlanet.HasIntelligentLife)
		occupant, ok := sim.Galaxy().Occupant(c.HomePlanet.ID)
		assert.True(t, ok)
		assert.Equal(t, c.ID, occupant)
		for _, name := range civilization.TraitNames {
			assert.GreaterOrEqual(t, c.Traits[name], 0.0)
			assert.Less(t, c.Traits[name], 1.0)
		}
	}
	assert.Len(t, sim.Relations(), 12)
	for _, r := range sim.Relations() {
		assert.Zero(t, r.Value)
	}
}

func TestNew_ClampsToAvailablePlanets(t *testing.T) {
	sim := simulation.New(crowdedConfig(1, 50), simulation.WithGalaxy(helpers.NewCrowdedGalaxy(6)))

	assert.Len(t, sim.Civilizations(), 6)
}

func TestNew_NoIntelligentLifeMeansEmptyRoster(t *testing.T) {
	b := helpers.NewGalaxyBuilder()
	b.Star(0, 0, 0)
	b.Planet(0, 1000, true)
	sim := simulation.New(crowdedConfig(1, 5), simulation.WithGalaxy(b.Build()))

	stats := sim.Step()

	assert.Empty(t, sim.Civilizations())
	assert.Equal(t, simulation.Statistics{Step: 0}, stats)
}

func TestRun_GeneratedGalaxyIsReproducible(t *testing.T) {
	cfg := simulation.DefaultConfig()
	cfg.Seed = 42
	cfg.Stars = 100
	cfg.Civilizations = 5

	first := simulation.New(cfg)
	second := simulation.New(cfg)
	firstStats, err := first.Run(context.Background(), 50)
	require.NoError(t, err)
	secondStats, err := second.Run(context.Background(), 50)
	require.NoError(t, err)

	assert.Len(t, firstStats, 50)
	assert.Equal(t, firstStats, secondStats)
	assert.Equal(t, first.Galaxy().Summarize(), second.Galaxy().Summarize())
	assert.Equal(t, first.EventLog(), second.EventLog())
	require.Equal(t, len(first.Civilizations()), len(second.Civilizations()))
	for i, c := range first.Civilizations() {
		other := second.Civilizations()[i]
		assert.Equal(t, c.Population, other.Population)
		assert.Equal(t, c.HistoryLen(), other.HistoryLen())
	}
}

func TestRun_SeededCivilizationsAreReproducible(t *testing.T) {
	run := func() *simulation.Simulation {
		sim := simulation.New(crowdedConfig(7, 6), simulation.WithGalaxy(helpers.NewCrowdedGalaxy(6)))
		_, err := sim.Run(context.Background(), 200)
		require.NoError(t, err)
		return sim
	}

	first, second := run(), run()

	assert.Equal(t, first.History(), second.History())
	assert.Equal(t, first.EventLog(), second.EventLog())
	assert.Equal(t, first.Relations(), second.Relations())
	assert.Equal(t, first.ActiveWars(), second.ActiveWars())
	assert.Equal(t, first.TradeRoutes(), second.TradeRoutes())
	for i, c := range first.Civilizations() {
		other := second.Civilizations()[i]
		assert.Equal(t, c.Population, other.Population)
		assert.Equal(t, c.Resources, other.Resources)
		assert.Equal(t, c.Technologies, other.Technologies)
		assert.Equal(t, c.History(), other.History())
		assert.Equal(t, c.Status(), other.Status())
	}
}

func TestStep_InvariantsHoldEveryStep(t *testing.T) {
	sim := simulation.New(crowdedConfig(3, 6), simulation.WithGalaxy(helpers.NewCrowdedGalaxy(6)))
	techLevels := map[int]int{}
	historyLens := map[int]int{}
	collapsed := map[int]bool{}

	for step := 0; step < 150; step++ {
		stats := sim.Step()
		assert.Equal(t, step, stats.Step)
		assert.Equal(t, simulation.Aggregate(step, sim.Civilizations()), stats)

		owners := map[int]int{}
		for _, c := range sim.Civilizations() {
			for _, p := range c.Planets {
				_, taken := owners[p.ID]
				assert.False(t, taken, "planet %d owned twice", p.ID)
				owners[p.ID] = c.ID
			}
			assert.GreaterOrEqual(t, c.TechLevel, techLevels[c.ID])
			assert.GreaterOrEqual(t, c.HistoryLen(), historyLens[c.ID])
			assert.GreaterOrEqual(t, c.Population, int64(0))
			if collapsed[c.ID] {
				assert.False(t, c.IsAlive(), "civilization %d came back", c.ID)
			}
			techLevels[c.ID] = c.TechLevel
			historyLens[c.ID] = c.HistoryLen()
			collapsed[c.ID] = !c.IsAlive()
		}
		for planetID, civID := range owners {
			if occupant, ok := sim.Galaxy().Occupant(planetID); ok {
				assert.Equal(t, civID, occupant)
			}
		}
	}
	assert.Equal(t, 150, sim.StepCount())
}

func TestAggregate_NoAliveCivilizations(t *testing.T) {
	stats := simulation.Aggregate(3, nil)

	assert.Equal(t, simulation.Statistics{Step: 3}, stats)
}

func TestAggregate_IgnoresCollapsed(t *testing.T) {
	g := helpers.NewCrowdedGalaxy(2)
	a := helpers.FoundCivilization(g, 0, g.Planets[0], 1000, 3)
	b := helpers.FoundCivilization(g, 1, g.Planets[2], 500, 6)
	c := helpers.FoundCivilization(g, 2, g.Planets[1], 9999, 9)
	c.Collapse("testing")

	stats := simulation.Aggregate(0, []*civilization.Civilization{a, b, c})

	assert.Equal(t, 2, stats.AliveCivilizations)
	assert.Equal(t, int64(1500), stats.TotalPopulation)
	assert.Equal(t, 4.5, stats.AverageTechLevel)
}

func TestRun_CancellationKeepsCompletedSteps(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	observer := func(stats simulation.Statistics, fired []events.Entry) {
		if stats.Step == 2 {
			cancel()
		}
	}
	sim := simulation.New(crowdedConfig(5, 3),
		simulation.WithGalaxy(helpers.NewCrowdedGalaxy(3)),
		simulation.WithObserver(observer),
	)

	stats, err := sim.Run(ctx, 100)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, stats, 3)
	assert.Equal(t, 3, sim.StepCount())
}

func TestStep_EventsDisabled(t *testing.T) {
	cfg := crowdedConfig(5, 3)
	cfg.EventsEnabled = false
	cfg.EventRates = events.Rates{Plague: 1}
	sim := simulation.New(cfg, simulation.WithGalaxy(helpers.NewCrowdedGalaxy(3)))

	sim.Step()

	assert.Empty(t, sim.EventLog())
	assert.Nil(t, sim.EventEntries())
}

func TestStep_ObserverSeesFiredEvents(t *testing.T) {
	cfg := crowdedConfig(5, 3)
	cfg.EventRates = events.Rates{Plague: 1}
	var fired []events.Entry
	sim := simulation.New(cfg,
		simulation.WithGalaxy(helpers.NewCrowdedGalaxy(3)),
		simulation.WithObserver(func(_ simulation.Statistics, entries []events.Entry) {
			fired = append(fired, entries...)
		}),
	)

	sim.Step()

	require.Len(t, fired, 3)
	for _, e := range fired {
		assert.Equal(t, events.KindPlague, e.Kind)
	}
	assert.Len(t, sim.EventLog(), 3)
}

func TestStep_AdaptivePolicyRecordsStrategy(t *testing.T) {
	cfg := crowdedConfig(5, 3)
	cfg.AdaptivePolicy = true
	sim := simulation.New(cfg, simulation.WithGalaxy(helpers.NewCrowdedGalaxy(3)))
	require.NotNil(t, sim.Policy())

	sim.Step()

	for _, c := range sim.Civilizations() {
		assert.NotEmpty(t, c.Strategy)
	}
}

func TestStep_NoPolicyByDefault(t *testing.T) {
	sim := simulation.New(crowdedConfig(5, 3), simulation.WithGalaxy(helpers.NewCrowdedGalaxy(3)))

	sim.Step()

	assert.Nil(t, sim.Policy())
	for _, c := range sim.Civilizations() {
		assert.Empty(t, c.Strategy)
	}
}
