package strategy

import (
	"github.com/andrescamacho/galaxysim/internal/domain/civilization"
	"github.com/andrescamacho/galaxysim/internal/domain/shared"
	"github.com/andrescamacho/galaxysim/pkg/utils"
)

// Strategy is the high-level stance a policy picks for a civilization
type Strategy string

const (
	StrategyWar     Strategy = "war"
	StrategyExpand  Strategy = "expand"
	StrategyTrade   Strategy = "trade"
	StrategyIsolate Strategy = "isolate"
)

// Strategies lists every strategy in weight order
var Strategies = []Strategy{StrategyWar, StrategyExpand, StrategyTrade, StrategyIsolate}

// Outcome is feedback given to a policy after a step
type Outcome string

const (
	OutcomeSurvived Outcome = "survived"
	OutcomeCollapse Outcome = "collapse"
)

// Mutation parameters
const (
	MutationChance         = 0.1
	MutationStrength       = 0.05
	CrisisMutationStrength = 0.2
	LearningPenalty        = 0.1
)

// Context is what a policy sees when choosing
type Context struct {
	Step               int
	AliveCivilizations int
	AtWar              bool
}

// Policy decides a civilization's strategy and adapts its traits.
// Implementations must draw only from the RNG they were built with.
type Policy interface {
	Choose(ctx Context, c *civilization.Civilization) Strategy
	Mutate(c *civilization.Civilization)
	Learn(c *civilization.Civilization, outcome Outcome)
}

// Decision is one remembered choice
type Decision struct {
	Context  Context
	Strategy Strategy
}

// DefaultPolicy picks a strategy at random weighted by traits:
// war by aggression, expand by curiosity, trade by risk tolerance,
// isolate by one minus aggression.
type DefaultPolicy struct {
	rng    *shared.RNG
	memory map[int][]Decision
}

// NewDefaultPolicy creates the trait-weighted policy
func NewDefaultPolicy(rng *shared.RNG) *DefaultPolicy {
	return &DefaultPolicy{rng: rng, memory: make(map[int][]Decision)}
}

// Choose draws a strategy, stores it on the civilization and remembers it
func (p *DefaultPolicy) Choose(ctx Context, c *civilization.Civilization) Strategy {
	aggression := c.Traits.Get(civilization.TraitAggression, 0.5)
	weights := []float64{
		aggression,
		c.Traits.Get(civilization.TraitCuriosity, 0.5),
		c.Traits.Get(civilization.TraitRiskTolerance, 0.5),
		1 - aggression,
	}
	chosen := Strategies[p.rng.Categorical(weights)]
	c.Strategy = string(chosen)
	p.memory[c.ID] = append(p.memory[c.ID], Decision{Context: ctx, Strategy: chosen})
	return chosen
}

// Mutate drifts each trait with a small chance. Collapsed civilizations mutate harder.
// Traits are visited in their fixed order so the draw sequence is stable.
func (p *DefaultPolicy) Mutate(c *civilization.Civilization) {
	strength := MutationStrength
	if !c.IsAlive() {
		strength = CrisisMutationStrength
	}
	for _, trait := range civilization.TraitNames {
		v, ok := c.Traits[trait]
		if !ok {
			continue
		}
		if p.rng.Chance(MutationChance) {
			c.Traits[trait] = utils.Clamp01(v + p.rng.Uniform(-strength, strength))
		}
	}
}

// Learn penalizes the trait behind the last strategy when it ended in collapse
func (p *DefaultPolicy) Learn(c *civilization.Civilization, outcome Outcome) {
	if outcome != OutcomeCollapse {
		return
	}
	last, ok := p.LastDecision(c.ID)
	if !ok {
		return
	}
	switch last.Strategy {
	case StrategyWar:
		c.Traits[civilization.TraitAggression] = utils.Clamp01(c.Traits.Get(civilization.TraitAggression, 0) - LearningPenalty)
	case StrategyExpand:
		c.Traits[civilization.TraitCuriosity] = utils.Clamp01(c.Traits.Get(civilization.TraitCuriosity, 0) - LearningPenalty)
	}
}

// LastDecision returns the most recent choice made for a civilization
func (p *DefaultPolicy) LastDecision(civilizationID int) (Decision, bool) {
	decisions := p.memory[civilizationID]
	if len(decisions) == 0 {
		return Decision{}, false
	}
	return decisions[len(decisions)-1], true
}

// Memory returns every choice made for a civilization
func (p *DefaultPolicy) Memory(civilizationID int) []Decision {
	return append([]Decision{}, p.memory[civilizationID]...)
}
