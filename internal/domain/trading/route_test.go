package trading_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/galaxysim/internal/domain/galaxy"
	"github.com/andrescamacho/galaxysim/internal/domain/trading"
	"github.com/andrescamacho/galaxysim/test/helpers"
)

func TestLedger_OpenRecordsRouteAndHistories(t *testing.T) {
	b := helpers.NewGalaxyBuilder()
	b.Star(0, 0, 0)
	g := b.Build()
	a := helpers.FoundCivilization(g, 0, b.IntelligentPlanet(0, 1000), 1000, 1)
	c := helpers.FoundCivilization(g, 1, b.IntelligentPlanet(0, 1000), 1000, 1)
	ledger := trading.NewLedger()

	route := ledger.Open(a, c, galaxy.ResourceGeneric, 250, 3)

	assert.Equal(t, trading.Route{From: 0, To: 1, Resource: galaxy.ResourceGeneric, Volume: 250, Active: true, Step: 3}, route)
	assert.Equal(t, []trading.Route{route}, ledger.Routes())
	assert.Equal(t, []string{"Started trade with Civ 1"}, a.History())
	assert.Equal(t, []string{"Started trade with Civ 0"}, c.History())
}

func TestLedger_ViewFlagsStaleRoutes(t *testing.T) {
	b := helpers.NewGalaxyBuilder()
	b.Star(0, 0, 0)
	g := b.Build()
	a := helpers.FoundCivilization(g, 0, b.IntelligentPlanet(0, 1000), 1000, 1)
	c := helpers.FoundCivilization(g, 1, b.IntelligentPlanet(0, 1000), 1000, 1)
	ledger := trading.NewLedger()
	ledger.Open(a, c, galaxy.ResourceGeneric, 100, 0)

	c.Collapse("testing")
	view := ledger.View(func(id int) bool { return id == a.ID })

	assert.True(t, view[0].Stale)
	assert.True(t, view[0].Active)
	assert.Equal(t, 1, ledger.Len())
}

func TestResourceFor_UsesRichestDeposit(t *testing.T) {
	b := helpers.NewGalaxyBuilder()
	b.Star(0, 0, 0)
	home := b.IntelligentPlanet(0, 1000)
	g := b.Build()
	c := helpers.FoundCivilization(g, 0, home, 1000, 1)

	assert.Equal(t, galaxy.ResourceGeneric, trading.ResourceFor(c))

	home.Deposits = galaxy.Deposits{Minerals: 10, Energy: 30}
	assert.Equal(t, galaxy.ResourceEnergy, trading.ResourceFor(c))
}
