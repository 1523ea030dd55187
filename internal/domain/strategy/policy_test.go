package strategy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/galaxysim/internal/domain/civilization"
	"github.com/andrescamacho/galaxysim/internal/domain/shared"
	"github.com/andrescamacho/galaxysim/internal/domain/strategy"
	"github.com/andrescamacho/galaxysim/test/helpers"
)

func newCivilization(t *testing.T) *civilization.Civilization {
	t.Helper()
	b := helpers.NewGalaxyBuilder()
	b.Star(0, 0, 0)
	g := b.Build()
	return helpers.FoundCivilization(g, 0, b.IntelligentPlanet(0, 1000), 1000, 1)
}

func TestChoose_FollowsTraitWeights(t *testing.T) {
	c := newCivilization(t)
	c.Traits = civilization.NewTraits(0, 1, 0)
	policy := strategy.NewDefaultPolicy(shared.NewRNG(3))

	for i := 0; i < 50; i++ {
		chosen := policy.Choose(strategy.Context{Step: i}, c)
		assert.Contains(t, []strategy.Strategy{strategy.StrategyExpand, strategy.StrategyIsolate}, chosen)
	}
	assert.Len(t, policy.Memory(c.ID), 50)
}

func TestChoose_RecordsStrategyOnCivilization(t *testing.T) {
	c := newCivilization(t)
	c.Traits = civilization.NewTraits(1, 0, 0)
	policy := strategy.NewDefaultPolicy(shared.NewRNG(3))

	chosen := policy.Choose(strategy.Context{}, c)

	assert.Equal(t, strategy.StrategyWar, chosen)
	assert.Equal(t, "war", c.Strategy)
}

func TestMutate_KeepsTraitsInRange(t *testing.T) {
	c := newCivilization(t)
	c.Traits = civilization.NewTraits(0, 1, 0.5)
	c.Collapse("testing")
	policy := strategy.NewDefaultPolicy(shared.NewRNG(11))

	for i := 0; i < 500; i++ {
		policy.Mutate(c)
	}

	for _, name := range civilization.TraitNames {
		assert.GreaterOrEqual(t, c.Traits[name], 0.0)
		assert.LessOrEqual(t, c.Traits[name], 1.0)
	}
}

func TestLearn_PenalizesLastStrategyOnCollapse(t *testing.T) {
	c := newCivilization(t)
	c.Traits = civilization.NewTraits(1, 0, 0)
	policy := strategy.NewDefaultPolicy(shared.NewRNG(3))
	require.Equal(t, strategy.StrategyWar, policy.Choose(strategy.Context{}, c))

	policy.Learn(c, strategy.OutcomeSurvived)
	assert.Equal(t, 1.0, c.Traits[civilization.TraitAggression])

	policy.Learn(c, strategy.OutcomeCollapse)
	assert.InDelta(t, 0.9, c.Traits[civilization.TraitAggression], 1e-12)
}

func TestLearn_NoMemoryNoChange(t *testing.T) {
	c := newCivilization(t)
	before := c.Traits.Clone()

	strategy.NewDefaultPolicy(shared.NewRNG(3)).Learn(c, strategy.OutcomeCollapse)

	assert.Equal(t, before, c.Traits)
}
