package helpers

import (
	"github.com/andrescamacho/galaxysim/internal/domain/civilization"
	"github.com/andrescamacho/galaxysim/internal/domain/galaxy"
	"github.com/andrescamacho/galaxysim/internal/domain/shared"
)

// GalaxyBuilder assembles small hand-made galaxies for tests.
// Stars and planets get dense IDs in the order they are added.
type GalaxyBuilder struct {
	stars   []*galaxy.Star
	planets []*galaxy.Planet
}

// NewGalaxyBuilder creates an empty builder
func NewGalaxyBuilder() *GalaxyBuilder {
	return &GalaxyBuilder{}
}

// Star adds a G class star at the given position and returns its index
func (b *GalaxyBuilder) Star(x, y, z float64) int {
	star := galaxy.NewStar(len(b.stars), shared.NewVector3(x, y, z), galaxy.SpectralClassG, 0.02, 4.5)
	b.stars = append(b.stars, star)
	return star.ID
}

// Planet adds a rocky planet to a star and returns it
func (b *GalaxyBuilder) Planet(starIndex int, resources int64, hasLife bool) *galaxy.Planet {
	star := b.stars[starIndex]
	p := &galaxy.Planet{
		ID:            len(b.planets),
		Star:          star,
		Type:          galaxy.PlanetTypeRocky,
		Mass:          1,
		Temperature:   288,
		Resources:     resources,
		HabitableZone: true,
		OrbitalRadius: 1,
		Atmosphere:    galaxy.AtmosphereEarthLike,
		HasLife:       hasLife,
	}
	star.Planets = append(star.Planets, p)
	b.planets = append(b.planets, p)
	return p
}

// IntelligentPlanet adds a planet with intelligent life
func (b *GalaxyBuilder) IntelligentPlanet(starIndex int, resources int64) *galaxy.Planet {
	p := b.Planet(starIndex, resources, true)
	p.HasIntelligentLife = true
	return p
}

// Build returns the galaxy
func (b *GalaxyBuilder) Build() *galaxy.Galaxy {
	return galaxy.New(b.stars, b.planets)
}

// FoundCivilization creates a civilization on home, claims the planet and
// overrides the drawn population and tech level so tests can reason about them.
func FoundCivilization(g *galaxy.Galaxy, id int, home *galaxy.Planet, population int64, techLevel int) *civilization.Civilization {
	c := civilization.New(id, home, civilization.NewTraits(0.5, 0.5, 0.5), shared.NewRNG(int64(id)+1))
	if err := g.Claim(home.ID, id); err != nil {
		panic(err)
	}
	c.Population = population
	c.TechLevel = techLevel
	return c
}

// NewCrowdedGalaxy builds n stars spaced 8 ly apart on a line, each with one
// resource-rich planet bearing intelligent life and one colonizable living planet.
func NewCrowdedGalaxy(n int) *galaxy.Galaxy {
	b := NewGalaxyBuilder()
	for i := 0; i < n; i++ {
		star := b.Star(float64(i*8), 0, 0)
		b.IntelligentPlanet(star, 50_000_000)
		b.Planet(star, 1_000_000, true)
	}
	return b.Build()
}
