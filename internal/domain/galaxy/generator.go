package galaxy

import (
	"github.com/andrescamacho/galaxysim/internal/domain/shared"
)

// Generation constants
const (
	HalfWidth = 500.0 // light-years, stars are placed in [-HalfWidth, HalfWidth) on each axis

	MeanPlanetsPerStar = 3.0
	MeanMoonsRocky     = 1.0
	MeanMoonsOther     = 10.0

	minMetallicity = 0.001
	maxMetallicity = 0.03
	minAge         = 0.1
	maxAge         = 13.0

	minMass          = 0.1
	maxMass          = 10.0
	minTemperature   = 50.0
	maxTemperature   = 500.0
	minResources     = 1e5
	maxResources     = 1e8
	minOrbitalRadius = 0.1
	maxOrbitalRadius = 30.0

	// Life seeding: p(life) = base + metallicity factor, plus a bonus for G/K/M hosts
	lifeBaseProbability         = 0.01
	lifeMetallicityFactor       = 0.1
	lifeClassBonus              = 0.05
	intelligenceBaseProbability = 0.01
	intelligenceMetallicity     = 0.05

	maxDepositAmount = 1e6
)

// GeneratorConfig holds the inputs of a generation run
type GeneratorConfig struct {
	Stars int
	// SurveyDeposits draws optional mineral/energy/research deposits after life seeding
	SurveyDeposits bool
}

// Generator builds galaxies from a shared draw stream.
//
// Draw order is stars (position, class, metallicity, age), then per star a
// planet count followed by each planet (type, mass, temperature, resources,
// orbital radius, atmosphere, moons), then the life pass over all planets.
type Generator struct {
	rng *shared.RNG
}

// NewGenerator creates a generator consuming the given stream
func NewGenerator(rng *shared.RNG) *Generator {
	return &Generator{rng: rng}
}

// Generate produces a complete galaxy
func (gen *Generator) Generate(cfg GeneratorConfig) *Galaxy {
	stars := gen.generateStars(cfg.Stars)
	planets := gen.generatePlanets(stars)
	gen.seedLife(planets)
	if cfg.SurveyDeposits {
		gen.surveyDeposits(planets)
	}
	return New(stars, planets)
}

func (gen *Generator) generateStars(n int) []*Star {
	stars := make([]*Star, 0, n)
	for i := 0; i < n; i++ {
		position := shared.NewVector3(
			gen.rng.Uniform(-HalfWidth, HalfWidth),
			gen.rng.Uniform(-HalfWidth, HalfWidth),
			gen.rng.Uniform(-HalfWidth, HalfWidth),
		)
		class := spectralClasses[gen.rng.Categorical(spectralClassWeights)]
		metallicity := gen.rng.Uniform(minMetallicity, maxMetallicity)
		age := gen.rng.Uniform(minAge, maxAge)
		stars = append(stars, NewStar(i, position, class, metallicity, age))
	}
	return stars
}

func (gen *Generator) generatePlanets(stars []*Star) []*Planet {
	var planets []*Planet
	nextID := 0
	for _, star := range stars {
		count := gen.rng.Poisson(MeanPlanetsPerStar)
		for i := 0; i < count; i++ {
			p := gen.generatePlanet(nextID, star)
			star.Planets = append(star.Planets, p)
			planets = append(planets, p)
			nextID++
		}
	}
	return planets
}

func (gen *Generator) generatePlanet(id int, star *Star) *Planet {
	planetType := planetTypes[gen.rng.Categorical(planetTypeWeights)]
	mass := gen.rng.Uniform(minMass, maxMass)
	temperature := gen.rng.Uniform(minTemperature, maxTemperature)
	resources := int64(gen.rng.Uniform(minResources, maxResources))
	orbitalRadius := gen.rng.Uniform(minOrbitalRadius, maxOrbitalRadius)
	atmosphere := shared.Pick(gen.rng, atmospheres)

	meanMoons := MeanMoonsOther
	if planetType == PlanetTypeRocky {
		meanMoons = MeanMoonsRocky
	}

	return &Planet{
		ID:            id,
		Star:          star,
		Type:          planetType,
		Mass:          mass,
		Temperature:   temperature,
		Resources:     resources,
		HabitableZone: InHabitableZone(planetType, temperature),
		OrbitalRadius: orbitalRadius,
		Atmosphere:    atmosphere,
		Moons:         gen.rng.Poisson(meanMoons),
	}
}

// LifeProbability is the chance that an eligible planet around the star develops life
func LifeProbability(star *Star) float64 {
	p := lifeBaseProbability + lifeMetallicityFactor*star.Metallicity
	if star.Class.FavoursLife() {
		p += lifeClassBonus
	}
	return p
}

// IntelligenceProbability is the chance that life around the star becomes intelligent
func IntelligenceProbability(star *Star) float64 {
	return intelligenceBaseProbability + intelligenceMetallicity*star.Metallicity
}

func (gen *Generator) seedLife(planets []*Planet) {
	for _, p := range planets {
		if !p.CanHostLife() {
			continue
		}
		if gen.rng.Chance(LifeProbability(p.Star)) {
			p.HasLife = true
			if gen.rng.Chance(IntelligenceProbability(p.Star)) {
				p.HasIntelligentLife = true
			}
		}
	}
}

// surveyDeposits gives each planet at most one of each deposit, each present with probability 1/3
func (gen *Generator) surveyDeposits(planets []*Planet) {
	draw := func() int64 {
		if gen.rng.Chance(1.0 / 3.0) {
			return int64(gen.rng.Uniform(1, maxDepositAmount))
		}
		return 0
	}
	for _, p := range planets {
		p.Deposits = Deposits{
			Minerals: draw(),
			Energy:   draw(),
			Research: draw(),
		}
	}
}
