package civilization

import (
	"fmt"

	"github.com/andrescamacho/galaxysim/internal/domain/galaxy"
	"github.com/andrescamacho/galaxysim/internal/domain/shared"
)

// Founding and growth parameters
const (
	MinInitialPopulation = 1_000_000
	MaxInitialPopulation = 10_000_000
	MinGrowthRate        = 0.01
	MaxGrowthRate        = 0.05
	InitialTechLevel     = 1

	// ConsumptionPerCapita is the resource stock consumed per inhabitant per step
	ConsumptionPerCapita = 0.001

	// FoundingTechnology is owned by every civilization from the start
	FoundingTechnology = "Agriculture"
)

// Civilization is a spacefaring agent living on one or more planets.
//
// Invariants:
// - HomePlanet never changes and is always Planets[0]
// - a planet appears at most once in Planets, and only if the galaxy records this civilization as its occupant at claim time
// - Population never goes below zero
// - TechLevel and Technologies only grow
// - History is append-only
// - a collapsed civilization no longer grows, expands, researches, trades or fights
type Civilization struct {
	ID           int
	HomePlanet   *galaxy.Planet
	Planets      []*galaxy.Planet
	Population   int64
	GrowthRate   float64
	TechLevel    int
	Resources    int64
	Technologies []string
	Traits       Traits
	Government   Government
	Economy      Economy
	Religion     Religion
	Language     Language

	// Strategy is the last strategy an adaptive policy chose, empty when none runs
	Strategy string

	history   []string
	lifecycle Lifecycle
}

// New founds a civilization on its home planet, drawing population, growth rate
// and culture from the stream in that order. The caller is responsible for
// claiming the home planet in the galaxy.
func New(id int, home *galaxy.Planet, traits Traits, rng *shared.RNG) *Civilization {
	c := &Civilization{
		ID:           id,
		HomePlanet:   home,
		Planets:      []*galaxy.Planet{home},
		Population:   rng.IntBetween(MinInitialPopulation, MaxInitialPopulation),
		GrowthRate:   rng.Uniform(MinGrowthRate, MaxGrowthRate),
		TechLevel:    InitialTechLevel,
		Resources:    home.Resources,
		Technologies: []string{FoundingTechnology},
		Traits:       traits,
		history:      []string{},
		lifecycle:    NewLifecycle(),
	}
	c.Government = shared.Pick(rng, Governments)
	c.Language = shared.Pick(rng, Languages)
	c.Religion = shared.Pick(rng, Religions)
	c.Economy = shared.Pick(rng, Economies)
	return c
}

// Status returns the lifecycle status
func (c *Civilization) Status() LifecycleStatus {
	return c.lifecycle.Status()
}

// IsAlive returns true until the civilization collapses
func (c *Civilization) IsAlive() bool {
	return c.lifecycle.IsAlive()
}

// CollapseReason returns the reason of the first collapse
func (c *Civilization) CollapseReason() string {
	return c.lifecycle.Reason()
}

// History returns a copy of the event history
func (c *Civilization) History() []string {
	out := make([]string, len(c.history))
	copy(out, c.history)
	return out
}

// HistoryLen returns the number of history entries
func (c *Civilization) HistoryLen() int {
	return len(c.history)
}

// Record appends a line to the history
func (c *Civilization) Record(line string) {
	c.history = append(c.history, line)
}

// Grow applies one step of population growth and resource consumption,
// collapsing the civilization if its resources go negative.
func (c *Civilization) Grow() {
	if !c.IsAlive() {
		return
	}
	c.Population = int64(float64(c.Population) * (1 + c.GrowthRate))
	if c.Population < 0 {
		c.Population = 0
	}
	c.Resources -= int64(float64(c.Population) * ConsumptionPerCapita)
	if c.Resources < 0 {
		c.Collapse(ReasonResourceDepletion)
	}
}

// Expand colonizes the first unoccupied planet with life whose star lies
// within the nearby radius of the home star. First match wins, in galaxy
// generation order. Returns the colonized planet or nil.
func (c *Civilization) Expand(g *galaxy.Galaxy) *galaxy.Planet {
	if !c.IsAlive() {
		return nil
	}
	for _, p := range g.NearbyPlanets(c.HomePlanet, galaxy.DefaultNearbyDistance) {
		if !p.HasLife || g.IsOccupied(p.ID) {
			continue
		}
		if err := g.Claim(p.ID, c.ID); err != nil {
			continue
		}
		c.Planets = append(c.Planets, p)
		c.Resources += p.Resources
		c.Record(fmt.Sprintf("Colonized planet %d", p.ID))
		return p
	}
	return nil
}

// Collapse transitions to collapsed and records the reason.
// Calling it again still appends a history line; the status stays collapsed.
func (c *Civilization) Collapse(reason string) {
	c.lifecycle.Collapse(reason)
	c.Record(fmt.Sprintf("Collapsed due to %s", reason))
}

// Research adds a technology and raises the tech level by one
func (c *Civilization) Research(technology string) {
	c.Technologies = append(c.Technologies, technology)
	c.TechLevel++
	c.Record(fmt.Sprintf("Researched %s", technology))
}

// OwnedTechnologies returns the set of researched technology names
func (c *Civilization) OwnedTechnologies() map[string]bool {
	owned := make(map[string]bool, len(c.Technologies))
	for _, t := range c.Technologies {
		owned[t] = true
	}
	return owned
}

// Strength is the war score: tech level plus population
func (c *Civilization) Strength() int64 {
	return int64(c.TechLevel) + c.Population
}

// The cultural mutators below do not check the lifecycle: a collapsed
// civilization's culture can still be rewritten.

// ReformGovernment replaces the government
func (c *Civilization) ReformGovernment(government Government) {
	c.Government = government
	c.Record(fmt.Sprintf("Reformed government to %s", government))
}

// CulturalChange shifts a known trait by delta, clamped to [0, 1].
// Unknown traits are ignored and nothing is recorded.
func (c *Civilization) CulturalChange(trait string, delta float64) bool {
	if !c.Traits.Adjust(trait, delta) {
		return false
	}
	c.Record(fmt.Sprintf("Cultural trait %s changed by %g", trait, delta))
	return true
}

// Revolution redraws government and economy, and with even odds the religion
func (c *Civilization) Revolution(rng *shared.RNG) {
	oldGovernment := c.Government
	oldEconomy := c.Economy
	c.Government = shared.Pick(rng, Governments)
	c.Economy = shared.Pick(rng, Economies)
	if rng.Chance(0.5) {
		c.Religion = shared.Pick(rng, Religions)
	}
	c.Record(fmt.Sprintf("Revolution! Gov: %s->%s, Econ: %s->%s", oldGovernment, c.Government, oldEconomy, c.Economy))
}

// RestoreState rebuilds lifecycle and history when loading an archived civilization
func (c *Civilization) RestoreState(status LifecycleStatus, reason string, history []string) {
	c.lifecycle.RecoverFromPersistence(status, reason)
	c.history = append([]string{}, history...)
}
