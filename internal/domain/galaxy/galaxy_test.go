package galaxy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/galaxysim/internal/domain/galaxy"
	"github.com/andrescamacho/galaxysim/internal/domain/shared"
)

// threeSystems builds stars at x=0, x=10 and x=30 with one planet each plus a
// second planet around the origin star.
func threeSystems() (*galaxy.Galaxy, []*galaxy.Planet) {
	origin := galaxy.NewStar(0, shared.NewVector3(0, 0, 0), galaxy.SpectralClassG, 0.02, 4)
	near := galaxy.NewStar(1, shared.NewVector3(10, 0, 0), galaxy.SpectralClassK, 0.02, 4)
	far := galaxy.NewStar(2, shared.NewVector3(30, 0, 0), galaxy.SpectralClassM, 0.02, 4)

	planets := []*galaxy.Planet{
		{ID: 0, Star: origin, Type: galaxy.PlanetTypeRocky},
		{ID: 1, Star: origin, Type: galaxy.PlanetTypeIce},
		{ID: 2, Star: near, Type: galaxy.PlanetTypeOcean},
		{ID: 3, Star: far, Type: galaxy.PlanetTypeDesert},
	}
	origin.Planets = planets[:2]
	near.Planets = planets[2:3]
	far.Planets = planets[3:]

	return galaxy.New([]*galaxy.Star{origin, near, far}, planets), planets
}

func TestNearbyPlanets_UsesStarDistanceAndExcludesReference(t *testing.T) {
	g, planets := threeSystems()

	nearby := g.NearbyPlanets(planets[0], galaxy.DefaultNearbyDistance)

	assert.Equal(t, []*galaxy.Planet{planets[1], planets[2]}, nearby)
}

func TestNearbyPlanets_SkipsOccupied(t *testing.T) {
	g, planets := threeSystems()
	require.NoError(t, g.Claim(2, 7))

	nearby := g.NearbyPlanets(planets[0], galaxy.DefaultNearbyDistance)

	assert.Equal(t, []*galaxy.Planet{planets[1]}, nearby)
}

func TestNearbyPlanets_DistanceIsStrict(t *testing.T) {
	g, planets := threeSystems()

	nearby := g.NearbyPlanets(planets[0], 10)

	assert.Equal(t, []*galaxy.Planet{planets[1]}, nearby)
}

func TestClaim_RejectsSecondOccupant(t *testing.T) {
	g, _ := threeSystems()

	require.NoError(t, g.Claim(0, 1))
	require.NoError(t, g.Claim(0, 1))

	err := g.Claim(0, 2)
	var occupied *galaxy.ErrPlanetOccupied
	require.ErrorAs(t, err, &occupied)
	assert.Equal(t, 1, occupied.OccupantID)

	owner, ok := g.Occupant(0)
	assert.True(t, ok)
	assert.Equal(t, 1, owner)
}

func TestRelease_FreesPlanet(t *testing.T) {
	g, _ := threeSystems()
	require.NoError(t, g.Claim(3, 4))

	g.Release(3)

	assert.False(t, g.IsOccupied(3))
	assert.NoError(t, g.Claim(3, 5))
}

func TestPlanet_LookupByID(t *testing.T) {
	g, planets := threeSystems()

	p, err := g.Planet(2)
	require.NoError(t, err)
	assert.Same(t, planets[2], p)

	_, err = g.Planet(99)
	var notFound *galaxy.ErrPlanetNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestDeposits_Richest(t *testing.T) {
	assert.Equal(t, galaxy.ResourceGeneric, galaxy.Deposits{}.Richest())
	assert.Equal(t, galaxy.ResourceEnergy, galaxy.Deposits{Minerals: 3, Energy: 9, Research: 1}.Richest())
	assert.True(t, galaxy.Deposits{Research: 1}.Has(galaxy.ResourceResearch))
	assert.False(t, galaxy.Deposits{Research: 1}.Has(galaxy.ResourceMinerals))
}
