package civilization_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/galaxysim/internal/domain/civilization"
	"github.com/andrescamacho/galaxysim/internal/domain/galaxy"
	"github.com/andrescamacho/galaxysim/internal/domain/shared"
	"github.com/andrescamacho/galaxysim/test/helpers"
)

func TestNew_FoundingState(t *testing.T) {
	b := helpers.NewGalaxyBuilder()
	b.Star(0, 0, 0)
	home := b.IntelligentPlanet(0, 5_000_000)

	c := civilization.New(3, home, civilization.NewTraits(0.2, 0.4, 0.6), shared.NewRNG(42))

	assert.Equal(t, 3, c.ID)
	assert.Same(t, home, c.HomePlanet)
	assert.Equal(t, []*galaxy.Planet{home}, c.Planets)
	assert.GreaterOrEqual(t, c.Population, int64(civilization.MinInitialPopulation))
	assert.LessOrEqual(t, c.Population, int64(civilization.MaxInitialPopulation))
	assert.GreaterOrEqual(t, c.GrowthRate, civilization.MinGrowthRate)
	assert.Less(t, c.GrowthRate, civilization.MaxGrowthRate)
	assert.Equal(t, 1, c.TechLevel)
	assert.Equal(t, int64(5_000_000), c.Resources)
	assert.Equal(t, []string{"Agriculture"}, c.Technologies)
	assert.Contains(t, civilization.Governments, c.Government)
	assert.Contains(t, civilization.Economies, c.Economy)
	assert.Contains(t, civilization.Religions, c.Religion)
	assert.Contains(t, civilization.Languages, c.Language)
	assert.True(t, c.IsAlive())
	assert.Empty(t, c.History())
}

func TestNew_SameSeedSameCivilization(t *testing.T) {
	b := helpers.NewGalaxyBuilder()
	b.Star(0, 0, 0)
	home := b.IntelligentPlanet(0, 1000)
	traits := civilization.NewTraits(0.5, 0.5, 0.5)

	a := civilization.New(0, home, traits, shared.NewRNG(9))
	other := civilization.New(0, home, traits, shared.NewRNG(9))

	assert.Equal(t, a.Population, other.Population)
	assert.Equal(t, a.GrowthRate, other.GrowthRate)
	assert.Equal(t, a.Government, other.Government)
	assert.Equal(t, a.Language, other.Language)
}

func TestGrow_AppliesGrowthAndConsumption(t *testing.T) {
	b := helpers.NewGalaxyBuilder()
	b.Star(0, 0, 0)
	g := b.Build()
	c := helpers.FoundCivilization(g, 0, b.IntelligentPlanet(0, 10_000), 1_000_000, 1)
	c.Resources = 10_000
	c.GrowthRate = 0.02

	c.Grow()

	assert.Equal(t, int64(1_020_000), c.Population)
	assert.Equal(t, int64(10_000-1_020), c.Resources)
	assert.True(t, c.IsAlive())
}

func TestGrow_CollapsesOnDepletion(t *testing.T) {
	b := helpers.NewGalaxyBuilder()
	b.Star(0, 0, 0)
	g := b.Build()
	c := helpers.FoundCivilization(g, 0, b.IntelligentPlanet(0, 100), 1_000_000, 1)
	c.Resources = 100

	c.Grow()

	assert.False(t, c.IsAlive())
	assert.Equal(t, civilization.LifecycleStatusCollapsed, c.Status())
	assert.Equal(t, []string{"Collapsed due to resource depletion"}, c.History())
}

func TestGrow_NoOpWhenCollapsed(t *testing.T) {
	b := helpers.NewGalaxyBuilder()
	b.Star(0, 0, 0)
	g := b.Build()
	c := helpers.FoundCivilization(g, 0, b.IntelligentPlanet(0, 100), 1_000_000, 1)
	c.Collapse("testing")
	before := c.Population

	c.Grow()

	assert.Equal(t, before, c.Population)
}

func TestExpand_ClaimsFirstLivingNeighbour(t *testing.T) {
	b := helpers.NewGalaxyBuilder()
	s0 := b.Star(0, 0, 0)
	s1 := b.Star(10, 0, 0)
	s2 := b.Star(50, 0, 0)
	home := b.IntelligentPlanet(s0, 1000)
	barren := b.Planet(s1, 2000, false)
	living := b.Planet(s1, 3000, true)
	farLiving := b.Planet(s2, 4000, true)
	g := b.Build()
	c := helpers.FoundCivilization(g, 0, home, 1000, 1)
	c.Resources = 1000

	colonized := c.Expand(g)

	require.Same(t, living, colonized)
	assert.Equal(t, []*galaxy.Planet{home, living}, c.Planets)
	assert.Equal(t, int64(4000), c.Resources)
	assert.Equal(t, []string{"Colonized planet 2"}, c.History())
	occupant, ok := g.Occupant(living.ID)
	assert.True(t, ok)
	assert.Equal(t, 0, occupant)
	assert.False(t, g.IsOccupied(barren.ID))
	assert.False(t, g.IsOccupied(farLiving.ID))
}

func TestExpand_NothingAvailable(t *testing.T) {
	b := helpers.NewGalaxyBuilder()
	b.Star(0, 0, 0)
	b.Star(100, 0, 0)
	home := b.IntelligentPlanet(0, 1000)
	b.Planet(1, 1000, true)
	g := b.Build()
	c := helpers.FoundCivilization(g, 0, home, 1000, 1)

	assert.Nil(t, c.Expand(g))
	assert.Len(t, c.Planets, 1)
	assert.Empty(t, c.History())
}

func TestExpand_NeverTakesAnotherCivilizationsPlanet(t *testing.T) {
	b := helpers.NewGalaxyBuilder()
	b.Star(0, 0, 0)
	b.Star(5, 0, 0)
	homeA := b.IntelligentPlanet(0, 1000)
	homeB := b.IntelligentPlanet(1, 1000)
	g := b.Build()
	a := helpers.FoundCivilization(g, 0, homeA, 1000, 1)
	helpers.FoundCivilization(g, 1, homeB, 1000, 1)

	assert.Nil(t, a.Expand(g))
	occupant, _ := g.Occupant(homeB.ID)
	assert.Equal(t, 1, occupant)
}

func TestCollapse_IsTerminalAndKeepsFirstReason(t *testing.T) {
	b := helpers.NewGalaxyBuilder()
	b.Star(0, 0, 0)
	g := b.Build()
	c := helpers.FoundCivilization(g, 0, b.IntelligentPlanet(0, 1000), 1000, 1)

	c.Collapse(civilization.ReasonInternalRevolt)
	c.Collapse(civilization.ReasonDefeatedInWar)

	assert.False(t, c.IsAlive())
	assert.Equal(t, civilization.ReasonInternalRevolt, c.CollapseReason())
	assert.Equal(t, []string{
		"Collapsed due to internal revolt",
		"Collapsed due to defeated in war",
	}, c.History())
}

func TestResearch(t *testing.T) {
	b := helpers.NewGalaxyBuilder()
	b.Star(0, 0, 0)
	g := b.Build()
	c := helpers.FoundCivilization(g, 0, b.IntelligentPlanet(0, 1000), 1000, 1)

	c.Research("Writing")

	assert.Equal(t, 2, c.TechLevel)
	assert.Equal(t, []string{"Agriculture", "Writing"}, c.Technologies)
	assert.True(t, c.OwnedTechnologies()["Writing"])
	assert.Equal(t, []string{"Researched Writing"}, c.History())
}

func TestCulturalChange_ClampsAndIgnoresUnknownTraits(t *testing.T) {
	b := helpers.NewGalaxyBuilder()
	b.Star(0, 0, 0)
	g := b.Build()
	c := helpers.FoundCivilization(g, 0, b.IntelligentPlanet(0, 1000), 1000, 1)
	c.Traits[civilization.TraitAggression] = 0.95

	assert.True(t, c.CulturalChange(civilization.TraitAggression, 0.1))
	assert.False(t, c.CulturalChange("stubbornness", 0.1))

	assert.Equal(t, 1.0, c.Traits[civilization.TraitAggression])
	assert.Equal(t, []string{"Cultural trait aggression changed by 0.1"}, c.History())
}

func TestReformGovernment(t *testing.T) {
	b := helpers.NewGalaxyBuilder()
	b.Star(0, 0, 0)
	g := b.Build()
	c := helpers.FoundCivilization(g, 0, b.IntelligentPlanet(0, 1000), 1000, 1)

	c.ReformGovernment("republic")

	assert.Equal(t, civilization.Government("republic"), c.Government)
	assert.Equal(t, []string{"Reformed government to republic"}, c.History())
}

func TestRevolution_RecordsOldAndNew(t *testing.T) {
	b := helpers.NewGalaxyBuilder()
	b.Star(0, 0, 0)
	g := b.Build()
	c := helpers.FoundCivilization(g, 0, b.IntelligentPlanet(0, 1000), 1000, 1)
	c.Government = "monarchy"
	c.Economy = "planned"

	c.Revolution(shared.NewRNG(1))

	require.Equal(t, 1, c.HistoryLen())
	expected := "Revolution! Gov: monarchy->" + string(c.Government) + ", Econ: planned->" + string(c.Economy)
	assert.Equal(t, expected, c.History()[0])
}

func TestRoster(t *testing.T) {
	b := helpers.NewGalaxyBuilder()
	b.Star(0, 0, 0)
	g := b.Build()
	a := helpers.FoundCivilization(g, 0, b.IntelligentPlanet(0, 1000), 1000, 1)
	c := helpers.FoundCivilization(g, 1, b.IntelligentPlanet(0, 1000), 1000, 1)

	roster := civilization.NewRoster()
	require.NoError(t, roster.Add(a))
	require.NoError(t, roster.Add(c))
	assert.Error(t, roster.Add(a))

	a.Collapse("testing")

	assert.Equal(t, 2, roster.Len())
	assert.Equal(t, []*civilization.Civilization{c}, roster.Alive())
	assert.Equal(t, []int{0, 1}, roster.IDs())
	found, ok := roster.ByID(1)
	assert.True(t, ok)
	assert.Same(t, c, found)
}
