package simulation

import (
	"context"
	"log/slog"

	"github.com/andrescamacho/galaxysim/internal/domain/civilization"
	"github.com/andrescamacho/galaxysim/internal/domain/diplomacy"
	"github.com/andrescamacho/galaxysim/internal/domain/events"
	"github.com/andrescamacho/galaxysim/internal/domain/galaxy"
	"github.com/andrescamacho/galaxysim/internal/domain/shared"
	"github.com/andrescamacho/galaxysim/internal/domain/strategy"
	"github.com/andrescamacho/galaxysim/internal/domain/technology"
	"github.com/andrescamacho/galaxysim/internal/domain/trading"
	"github.com/andrescamacho/galaxysim/pkg/utils"
)

// Simulation owns a galaxy, its civilizations and every piece of shared
// relation state, and advances them one step at a time.
//
// All randomness comes from a single stream seeded from Config.Seed and is
// consumed in a fixed order: generation, seeding, then per step each alive
// civilization in founding order (policy, research, trade, diplomacy, war),
// then the event passes. A Simulation is not safe for concurrent use.
type Simulation struct {
	config Config
	rng    *shared.RNG
	logger *slog.Logger

	galaxy   *galaxy.Galaxy
	roster   *civilization.Roster
	techTree *technology.Tree
	ledger   *trading.Ledger
	matrix   *diplomacy.Matrix
	wars     *diplomacy.Wars
	lag      diplomacy.CommunicationLag
	events   *events.Manager
	policy   strategy.Policy

	observers []StepObserver
	history   []Statistics
	step      int
}

// New generates the galaxy and seeds civilizations on randomly chosen planets
// with intelligent life. Requesting more civilizations than such planets seeds
// as many as exist.
func New(cfg Config, opts ...Option) *Simulation {
	s := &Simulation{
		config:   cfg,
		rng:      shared.NewRNG(cfg.Seed),
		logger:   discardLogger(),
		roster:   civilization.NewRoster(),
		techTree: technology.DefaultTree(),
		ledger:   trading.NewLedger(),
		wars:     diplomacy.NewWars(),
		lag:      diplomacy.NewCommunicationLag(cfg.PropagationSpeed),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "simulation")

	if s.galaxy == nil {
		s.galaxy = galaxy.NewGenerator(s.rng).Generate(galaxy.GeneratorConfig{
			Stars:          cfg.Stars,
			SurveyDeposits: cfg.SurveyDeposits,
		})
	}
	s.seedCivilizations()
	s.matrix = diplomacy.NewMatrix(s.roster.IDs())

	if cfg.EventsEnabled {
		s.events = events.NewManager(s.galaxy, s.roster, s.rng, cfg.EventRates)
	}
	if s.policy == nil && cfg.AdaptivePolicy {
		s.policy = strategy.NewDefaultPolicy(s.rng)
	}

	summary := s.galaxy.Summarize()
	s.logger.Info("galaxy generated",
		"operation", "generate",
		"seed", cfg.Seed,
		"stars", summary.Stars,
		"planets", summary.Planets,
		"with_life", summary.WithLife,
		"intelligent", summary.WithIntelligence,
		"civilizations", s.roster.Len(),
		"requested_civilizations", cfg.Civilizations,
	)
	return s
}

func (s *Simulation) seedCivilizations() {
	candidates := s.galaxy.IntelligentPlanets()
	s.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	n := utils.Min(s.config.Civilizations, len(candidates))
	for id := 0; id < n; id++ {
		home := candidates[id]
		traits := civilization.NewTraits(s.rng.Float64(), s.rng.Float64(), s.rng.Float64())
		c := civilization.New(id, home, traits, s.rng)
		if err := s.galaxy.Claim(home.ID, id); err != nil {
			s.logger.Warn("home planet already claimed", "operation", "seed", "planet_id", home.ID, "error", err)
			continue
		}
		if err := s.roster.Add(c); err != nil {
			s.logger.Warn("civilization rejected", "operation", "seed", "civilization_id", id, "error", err)
		}
	}
}

// Step advances the simulation by one step and returns its statistics.
// A civilization that collapses partway through its turn skips its remaining phases.
func (s *Simulation) Step() Statistics {
	wasAlive := s.aliveSet()

	for _, c := range s.roster.All() {
		if !c.IsAlive() {
			continue
		}
		s.takeTurn(c)
	}

	var fired []events.Entry
	if s.events != nil {
		fired = s.events.Trigger(s.step)
		for _, e := range fired {
			s.logger.Debug(e.Message, "operation", "event", "step", s.step, "kind", string(e.Kind))
		}
	}

	for _, c := range s.roster.All() {
		if wasAlive[c.ID] && !c.IsAlive() {
			s.logger.Info("civilization collapsed",
				"operation", "step",
				"step", s.step,
				"civilization_id", c.ID,
				"reason", c.CollapseReason(),
			)
		}
	}

	stats := Aggregate(s.step, s.roster.All())
	s.history = append(s.history, stats)
	s.step++

	for _, observe := range s.observers {
		observe(stats, fired)
	}
	return stats
}

// Run executes steps until done or ctx is cancelled. Completed steps are never
// rolled back; on cancellation the statistics so far are returned with ctx.Err().
func (s *Simulation) Run(ctx context.Context, steps int) ([]Statistics, error) {
	for i := 0; i < steps; i++ {
		if err := ctx.Err(); err != nil {
			return s.History(), err
		}
		s.Step()
	}
	s.logger.Info("run finished",
		"operation", "run",
		"steps", s.step,
		"alive", len(s.roster.Alive()),
		"events", len(s.EventLog()),
	)
	return s.History(), nil
}

func (s *Simulation) takeTurn(c *civilization.Civilization) {
	if s.policy != nil {
		s.policy.Choose(strategy.Context{
			Step:               s.step,
			AliveCivilizations: len(s.roster.Alive()),
			AtWar:              s.wars.Engaged(c.ID),
		}, c)
		s.policy.Mutate(c)
	}

	phases := []func(*civilization.Civilization){
		s.grow,
		s.expand,
		s.research,
		s.trade,
		s.negotiate,
		s.fight,
	}
	for _, phase := range phases {
		if !c.IsAlive() {
			break
		}
		phase(c)
	}

	if s.policy != nil {
		outcome := strategy.OutcomeSurvived
		if !c.IsAlive() {
			outcome = strategy.OutcomeCollapse
		}
		s.policy.Learn(c, outcome)
	}
}

func (s *Simulation) grow(c *civilization.Civilization) {
	c.Grow()
}

func (s *Simulation) expand(c *civilization.Civilization) {
	if p := c.Expand(s.galaxy); p != nil {
		s.logger.Debug("planet colonized", "operation", "expand", "step", s.step, "civilization_id", c.ID, "planet_id", p.ID)
	}
}

func (s *Simulation) research(c *civilization.Civilization) {
	available := s.techTree.Available(c.OwnedTechnologies())
	if len(available) == 0 || !s.rng.Chance(ResearchChance) {
		return
	}
	c.Research(shared.Pick(s.rng, available))
}

func (s *Simulation) trade(c *civilization.Civilization) {
	for _, other := range s.roster.All() {
		if other == c || !other.IsAlive() {
			continue
		}
		if s.matrix.Get(c.ID, other.ID) <= 0 || s.lag.Lag(c, other) >= MaxTradeLag {
			continue
		}
		if s.rng.Chance(TradeChance) {
			volume := s.rng.IntBetween(trading.MinVolume, trading.MaxVolume)
			s.ledger.Open(c, other, trading.ResourceFor(c), volume, s.step)
		}
	}
}

func (s *Simulation) negotiate(c *civilization.Civilization) {
	for _, other := range s.roster.All() {
		if other == c || !other.IsAlive() {
			continue
		}
		s.matrix.Update(c.ID, other.ID, shared.Pick(s.rng, RelationDeltas))
	}
}

func (s *Simulation) fight(c *civilization.Civilization) {
	for _, other := range s.roster.All() {
		if !c.IsAlive() {
			return
		}
		if other == c || !other.IsAlive() {
			continue
		}
		if s.matrix.Get(c.ID, other.ID) < WarThreshold && !s.wars.AtWar(c.ID, other.ID) {
			if err := s.wars.Declare(c, other); err == nil {
				s.logger.Info("war declared", "operation", "war", "step", s.step, "aggressor", c.ID, "defender", other.ID)
			}
		}
		if s.wars.AtWar(c.ID, other.ID) && s.rng.Chance(WarResolutionChance) {
			outcome, err := s.wars.Resolve(c, other)
			if err != nil {
				continue
			}
			s.logger.Info("war resolved",
				"operation", "war",
				"step", s.step,
				"winner", outcome.Winner.ID,
				"loser", outcome.Loser.ID,
			)
		}
	}
}

func (s *Simulation) aliveSet() map[int]bool {
	alive := make(map[int]bool, s.roster.Len())
	for _, c := range s.roster.Alive() {
		alive[c.ID] = true
	}
	return alive
}
