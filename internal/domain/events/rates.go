package events

// Kind names an event type
type Kind string

const (
	KindSupernova      Kind = "supernova"
	KindAsteroidImpact Kind = "asteroid_impact"
	KindBlackHole      Kind = "black_hole"
	KindRevolt         Kind = "revolt"
	KindGoldenAge      Kind = "golden_age"
	KindPlague         Kind = "plague"
	KindResourceBoom   Kind = "resource_boom"
	KindResourceCrash  Kind = "resource_crash"
)

// AllKinds lists every event kind in evaluation order
var AllKinds = []Kind{
	KindSupernova, KindAsteroidImpact, KindBlackHole,
	KindRevolt, KindGoldenAge, KindPlague, KindResourceBoom, KindResourceCrash,
}

// IsCosmic reports whether the kind belongs to the galaxy-wide pass
func (k Kind) IsCosmic() bool {
	return k == KindSupernova || k == KindAsteroidImpact || k == KindBlackHole
}

// Effect multipliers
const (
	GoldenAgeGrowthFactor = 1.5
	PlagueSurvivalFactor  = 0.7
	BoomBonusFactor       = 0.5
	CrashFactor           = 0.5
)

// Rates are per-call trigger probabilities. Cosmic rates apply once per pass,
// civilization rates once per alive civilization per pass.
type Rates struct {
	Supernova      float64
	AsteroidImpact float64
	BlackHole      float64
	Revolt         float64
	GoldenAge      float64
	Plague         float64
	ResourceBoom   float64
	ResourceCrash  float64
}

// DefaultRates returns the standard event probabilities
func DefaultRates() Rates {
	return Rates{
		Supernova:      0.01,
		AsteroidImpact: 0.01,
		BlackHole:      0.005,
		Revolt:         0.02,
		GoldenAge:      0.01,
		Plague:         0.01,
		ResourceBoom:   0.01,
		ResourceCrash:  0.01,
	}
}
