package config

import "github.com/spf13/viper"

// SimulationConfig holds the parameters of a simulation run
type SimulationConfig struct {
	// Number of stars to generate
	Stars int `mapstructure:"stars" yaml:"stars" json:"stars" validate:"min=1"`

	// Requested number of civilizations; clamped to the intelligent planets available
	Civilizations int `mapstructure:"civilizations" yaml:"civilizations" json:"civilizations" validate:"min=0"`

	// Seed for the shared random stream
	Seed int64 `mapstructure:"seed" yaml:"seed" json:"seed"`

	// Steps to run when none are given on the command line
	Steps int `mapstructure:"steps" yaml:"steps" json:"steps" validate:"min=1"`

	// Signal propagation speed in light years per year
	PropagationSpeed float64 `mapstructure:"propagation_speed" yaml:"propagation_speed" json:"propagation_speed" validate:"gt=0"`

	EventsEnabled  bool `mapstructure:"events_enabled" yaml:"events_enabled" json:"events_enabled"`
	AdaptivePolicy bool `mapstructure:"adaptive_policy" yaml:"adaptive_policy" json:"adaptive_policy"`
	SurveyDeposits bool `mapstructure:"survey_deposits" yaml:"survey_deposits" json:"survey_deposits"`

	// Steps per second; 0 runs unthrottled
	Pace float64 `mapstructure:"pace" yaml:"pace" json:"pace" validate:"gte=0"`
}

// DefaultSimulationConfig returns the stock run parameters.
func DefaultSimulationConfig() SimulationConfig {
	return SimulationConfig{
		Stars:            1000,
		Civilizations:    10,
		Seed:             42,
		Steps:            100,
		PropagationSpeed: 1,
		EventsEnabled:    true,
	}
}

func registerSimulationDefaults(v *viper.Viper) {
	d := DefaultSimulationConfig()
	v.SetDefault("simulation.stars", d.Stars)
	v.SetDefault("simulation.civilizations", d.Civilizations)
	v.SetDefault("simulation.seed", d.Seed)
	v.SetDefault("simulation.steps", d.Steps)
	v.SetDefault("simulation.propagation_speed", d.PropagationSpeed)
	v.SetDefault("simulation.events_enabled", d.EventsEnabled)
	v.SetDefault("simulation.adaptive_policy", d.AdaptivePolicy)
	v.SetDefault("simulation.survey_deposits", d.SurveyDeposits)
	v.SetDefault("simulation.pace", d.Pace)
}
