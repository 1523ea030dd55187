package galaxy

import "fmt"

// PlanetType is the broad composition class of a planet
type PlanetType string

const (
	PlanetTypeRocky    PlanetType = "rocky"
	PlanetTypeGasGiant PlanetType = "gas_giant"
	PlanetTypeIce      PlanetType = "ice"
	PlanetTypeOcean    PlanetType = "ocean"
	PlanetTypeDesert   PlanetType = "desert"
)

var planetTypes = []PlanetType{
	PlanetTypeRocky, PlanetTypeGasGiant, PlanetTypeIce, PlanetTypeOcean, PlanetTypeDesert,
}

// AllPlanetTypes returns the planet types in catalog order
func AllPlanetTypes() []PlanetType {
	return append([]PlanetType(nil), planetTypes...)
}

var planetTypeWeights = []float64{0.5, 0.2, 0.1, 0.1, 0.1}

// Atmosphere is the atmospheric category of a planet
type Atmosphere string

const (
	AtmosphereNone      Atmosphere = "none"
	AtmosphereThin      Atmosphere = "thin"
	AtmosphereEarthLike Atmosphere = "Earth-like"
	AtmosphereThick     Atmosphere = "thick"
	AtmosphereToxic     Atmosphere = "toxic"
)

var atmospheres = []Atmosphere{
	AtmosphereNone, AtmosphereThin, AtmosphereEarthLike, AtmosphereThick, AtmosphereToxic,
}

// Habitable-zone temperature bounds in Kelvin (both exclusive)
const (
	HabitableMinTemperature = 200.0
	HabitableMaxTemperature = 350.0
)

// InHabitableZone is the generation-time habitability rule
func InHabitableZone(planetType PlanetType, temperature float64) bool {
	return temperature > HabitableMinTemperature &&
		temperature < HabitableMaxTemperature &&
		planetType == PlanetTypeRocky
}

// ResourceCategory names a kind of surveyed deposit
type ResourceCategory string

const (
	ResourceGeneric  ResourceCategory = "resources"
	ResourceMinerals ResourceCategory = "minerals"
	ResourceEnergy   ResourceCategory = "energy"
	ResourceResearch ResourceCategory = "research"
)

// Deposits are optional surveyed resource amounts. Zero means absent.
type Deposits struct {
	Minerals int64
	Energy   int64
	Research int64
}

// Amount returns the deposit size for a category, zero when absent
func (d Deposits) Amount(category ResourceCategory) int64 {
	switch category {
	case ResourceMinerals:
		return d.Minerals
	case ResourceEnergy:
		return d.Energy
	case ResourceResearch:
		return d.Research
	default:
		return 0
	}
}

// Has reports whether a deposit of the category is present
func (d Deposits) Has(category ResourceCategory) bool {
	return d.Amount(category) > 0
}

// Richest returns the category with the largest deposit, or ResourceGeneric if nothing was surveyed.
// Ties go to the earlier category in minerals, energy, research order.
func (d Deposits) Richest() ResourceCategory {
	best := ResourceGeneric
	var amount int64
	for _, c := range []ResourceCategory{ResourceMinerals, ResourceEnergy, ResourceResearch} {
		if a := d.Amount(c); a > amount {
			best, amount = c, a
		}
	}
	return best
}

// Planet orbits a Star. Resources is the only field civilizations draw down;
// HabitableZone is fixed at generation. Occupancy lives in the owning Galaxy.
type Planet struct {
	ID                 int
	Star               *Star
	Type               PlanetType
	Mass               float64 // Earth masses
	Temperature        float64 // Kelvin
	Resources          int64
	HabitableZone      bool
	OrbitalRadius      float64 // AU
	Atmosphere         Atmosphere
	Moons              int
	HasLife            bool
	HasIntelligentLife bool
	Deposits           Deposits
}

// CanHostLife reports whether the life-seeding pass may consider this planet
func (p *Planet) CanHostLife() bool {
	return p.HabitableZone && p.Atmosphere == AtmosphereEarthLike
}

// Sterilize clears both life flags
func (p *Planet) Sterilize() {
	p.HasLife = false
	p.HasIntelligentLife = false
}

func (p *Planet) String() string {
	return fmt.Sprintf("Planet(%d, %s)", p.ID, p.Type)
}
