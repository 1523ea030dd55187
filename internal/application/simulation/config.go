package simulation

import (
	"github.com/andrescamacho/galaxysim/internal/domain/diplomacy"
	"github.com/andrescamacho/galaxysim/internal/domain/events"
)

// Step phase parameters
const (
	ResearchChance      = 0.2
	TradeChance         = 0.05
	MaxTradeLag         = 50.0
	WarThreshold        = -5
	WarResolutionChance = 0.1
)

// RelationDeltas are the equally likely per-step relation shifts
var RelationDeltas = []int{-1, 0, 1}

// Config holds the parameters of one run
type Config struct {
	Stars            int
	Civilizations    int
	Seed             int64
	PropagationSpeed float64
	EventsEnabled    bool
	EventRates       events.Rates
	AdaptivePolicy   bool
	SurveyDeposits   bool
}

// DefaultConfig returns the standard run parameters
func DefaultConfig() Config {
	return Config{
		Stars:            1000,
		Civilizations:    10,
		Seed:             42,
		PropagationSpeed: diplomacy.DefaultPropagationSpeed,
		EventsEnabled:    true,
		EventRates:       events.DefaultRates(),
	}
}
