package simulation

import (
	"io"
	"log/slog"

	"github.com/andrescamacho/galaxysim/internal/domain/events"
	"github.com/andrescamacho/galaxysim/internal/domain/galaxy"
	"github.com/andrescamacho/galaxysim/internal/domain/strategy"
	"github.com/andrescamacho/galaxysim/internal/domain/technology"
)

// StepObserver is called after every completed step with its statistics and the events it fired
type StepObserver func(stats Statistics, fired []events.Entry)

// Option configures a Simulation
type Option func(*Simulation)

// WithLogger sets the logger. Nil discards.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Simulation) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTechTree replaces the default technology tree
func WithTechTree(tree *technology.Tree) Option {
	return func(s *Simulation) {
		if tree != nil {
			s.techTree = tree
		}
	}
}

// WithGalaxy seeds civilizations into an existing galaxy instead of generating one.
// Config.Stars and Config.SurveyDeposits are ignored.
func WithGalaxy(g *galaxy.Galaxy) Option {
	return func(s *Simulation) {
		s.galaxy = g
	}
}

// WithPolicy installs an adaptive policy, overriding Config.AdaptivePolicy
func WithPolicy(policy strategy.Policy) Option {
	return func(s *Simulation) {
		s.policy = policy
	}
}

// WithObserver registers a step observer
func WithObserver(observer StepObserver) Option {
	return func(s *Simulation) {
		if observer != nil {
			s.observers = append(s.observers, observer)
		}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
