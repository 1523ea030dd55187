package simulation

import (
	"github.com/andrescamacho/galaxysim/internal/domain/civilization"
	"github.com/andrescamacho/galaxysim/internal/domain/diplomacy"
	"github.com/andrescamacho/galaxysim/internal/domain/events"
	"github.com/andrescamacho/galaxysim/internal/domain/galaxy"
	"github.com/andrescamacho/galaxysim/internal/domain/strategy"
	"github.com/andrescamacho/galaxysim/internal/domain/technology"
	"github.com/andrescamacho/galaxysim/internal/domain/trading"
)

// Read-only accessors for reporting. Returned slices are copies; the
// civilizations and the galaxy are live and must not be mutated by callers.

func (s *Simulation) Config() Config {
	return s.config
}

func (s *Simulation) Galaxy() *galaxy.Galaxy {
	return s.galaxy
}

func (s *Simulation) Civilizations() []*civilization.Civilization {
	return append([]*civilization.Civilization{}, s.roster.All()...)
}

func (s *Simulation) AliveCivilizations() []*civilization.Civilization {
	return s.roster.Alive()
}

func (s *Simulation) Civilization(id int) (*civilization.Civilization, bool) {
	return s.roster.ByID(id)
}

func (s *Simulation) TechTree() *technology.Tree {
	return s.techTree
}

func (s *Simulation) Relations() []diplomacy.Relation {
	return s.matrix.Relations()
}

func (s *Simulation) Relation(from, to int) int {
	return s.matrix.Get(from, to)
}

func (s *Simulation) ActiveWars() []diplomacy.War {
	return s.wars.Active()
}

// TradeRoutes lists every route, marking those with a collapsed party as stale
func (s *Simulation) TradeRoutes() []trading.RouteView {
	return s.ledger.View(func(id int) bool {
		c, ok := s.roster.ByID(id)
		return ok && c.IsAlive()
	})
}

// EventLog returns the process-wide event messages, empty when events are disabled
func (s *Simulation) EventLog() []string {
	if s.events == nil {
		return []string{}
	}
	return s.events.Log()
}

func (s *Simulation) EventEntries() []events.Entry {
	if s.events == nil {
		return nil
	}
	return s.events.Entries()
}

// History returns the statistics of every completed step
func (s *Simulation) History() []Statistics {
	return append([]Statistics{}, s.history...)
}

// StepCount returns the number of completed steps
func (s *Simulation) StepCount() int {
	return s.step
}

// Policy returns the adaptive policy, nil when none runs
func (s *Simulation) Policy() strategy.Policy {
	return s.policy
}
