package civilization

import "github.com/andrescamacho/galaxysim/pkg/utils"

// Trait names
const (
	TraitAggression    = "aggression"
	TraitCuriosity     = "curiosity"
	TraitRiskTolerance = "risk_tolerance"
)

// TraitNames lists traits in the order they are drawn at founding
var TraitNames = []string{TraitAggression, TraitCuriosity, TraitRiskTolerance}

// Traits maps a trait name to a value in [0, 1]
type Traits map[string]float64

// NewTraits creates the standard trait set, clamping each value
func NewTraits(aggression, curiosity, riskTolerance float64) Traits {
	return Traits{
		TraitAggression:    utils.Clamp01(aggression),
		TraitCuriosity:     utils.Clamp01(curiosity),
		TraitRiskTolerance: utils.Clamp01(riskTolerance),
	}
}

// Get returns the trait value, or fallback when the trait is not defined
func (t Traits) Get(name string, fallback float64) float64 {
	if v, ok := t[name]; ok {
		return v
	}
	return fallback
}

// Adjust adds delta to an existing trait and clamps to [0, 1].
// Unknown traits are left untouched and reported as false.
func (t Traits) Adjust(name string, delta float64) bool {
	v, ok := t[name]
	if !ok {
		return false
	}
	t[name] = utils.Clamp01(v + delta)
	return true
}

// Clone returns an independent copy
func (t Traits) Clone() Traits {
	out := make(Traits, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}
