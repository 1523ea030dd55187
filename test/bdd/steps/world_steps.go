package steps

import (
	"context"
	"fmt"
	"strings"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/galaxysim/internal/domain/civilization"
	"github.com/andrescamacho/galaxysim/internal/domain/diplomacy"
	"github.com/andrescamacho/galaxysim/internal/domain/events"
	"github.com/andrescamacho/galaxysim/internal/domain/galaxy"
	"github.com/andrescamacho/galaxysim/internal/domain/shared"
	"github.com/andrescamacho/galaxysim/test/helpers"
)

// worldContext is a hand-built galaxy with a roster, war set and event manager
type worldContext struct {
	galaxy *galaxy.Galaxy
	roster *civilization.Roster
	wars   *diplomacy.Wars
	rates  events.Rates
	events *events.Manager
	err    error
}

func (w *worldContext) reset() {
	w.galaxy = nil
	w.roster = civilization.NewRoster()
	w.wars = diplomacy.NewWars()
	w.rates = events.Rates{}
	w.events = nil
	w.err = nil
}

func (w *worldContext) civ(id int) (*civilization.Civilization, error) {
	c, ok := w.roster.ByID(id)
	if !ok {
		return nil, fmt.Errorf("no civilization %d", id)
	}
	return c, nil
}

// Given steps

func (w *worldContext) aGalaxyWithInhabitedStarSystems(n int) error {
	w.galaxy = helpers.NewCrowdedGalaxy(n)
	return nil
}

func (w *worldContext) aGalaxyWithASingleInhabitedPlanet() error {
	b := helpers.NewGalaxyBuilder()
	star := b.Star(0, 0, 0)
	b.IntelligentPlanet(star, 50_000_000)
	w.galaxy = b.Build()
	return nil
}

func (w *worldContext) theFollowingCivilizations(table *godog.Table) error {
	if w.galaxy == nil {
		return fmt.Errorf("no galaxy")
	}
	for _, row := range dataRows(table) {
		id, err := cellInt64(table, row, "id")
		if err != nil {
			return err
		}
		homeID, err := cellInt64(table, row, "home_planet")
		if err != nil {
			return err
		}
		population, err := cellInt64(table, row, "population")
		if err != nil {
			return err
		}
		techLevel, err := cellInt64(table, row, "tech_level")
		if err != nil {
			return err
		}
		resources, err := cellInt64(table, row, "resources")
		if err != nil {
			return err
		}

		home, err := w.galaxy.Planet(int(homeID))
		if err != nil {
			return err
		}
		c := helpers.FoundCivilization(w.galaxy, int(id), home, population, int(techLevel))
		c.Resources = resources
		if err := w.roster.Add(c); err != nil {
			return err
		}
	}
	return nil
}

func (w *worldContext) civilizationHasResources(id int, resources int64) error {
	c, err := w.civ(id)
	if err != nil {
		return err
	}
	c.Resources = resources
	return nil
}

// When steps

func (w *worldContext) civilizationGrows(id int) error {
	c, err := w.civ(id)
	if err != nil {
		return err
	}
	c.Grow()
	return nil
}

func (w *worldContext) civilizationExpands(id int) error {
	c, err := w.civ(id)
	if err != nil {
		return err
	}
	c.Expand(w.galaxy)
	return nil
}

func (w *worldContext) civilizationCollapsesDueTo(id int, reason string) error {
	c, err := w.civ(id)
	if err != nil {
		return err
	}
	c.Collapse(reason)
	return nil
}

// Then steps

func (w *worldContext) civilizationShouldBe(id int, status string) error {
	c, err := w.civ(id)
	if err != nil {
		return err
	}
	if string(c.Status()) != status {
		return fmt.Errorf("expected civilization %d to be %s, got %s", id, status, c.Status())
	}
	return nil
}

func (w *worldContext) civilizationShouldHaveCollapseReason(id int, reason string) error {
	c, err := w.civ(id)
	if err != nil {
		return err
	}
	if c.CollapseReason() != reason {
		return fmt.Errorf("expected collapse reason %q, got %q", reason, c.CollapseReason())
	}
	return nil
}

func (w *worldContext) civilizationShouldOwnPlanets(id, count int) error {
	c, err := w.civ(id)
	if err != nil {
		return err
	}
	if len(c.Planets) != count {
		return fmt.Errorf("expected civilization %d to own %d planets, got %d", id, count, len(c.Planets))
	}
	return nil
}

func (w *worldContext) civilizationShouldHaveAPopulationOf(id int, population int64) error {
	c, err := w.civ(id)
	if err != nil {
		return err
	}
	if c.Population != population {
		return fmt.Errorf("expected population %d, got %d", population, c.Population)
	}
	return nil
}

func (w *worldContext) civilizationShouldHaveAPopulationAbove(id int, population int64) error {
	c, err := w.civ(id)
	if err != nil {
		return err
	}
	if c.Population <= population {
		return fmt.Errorf("expected population above %d, got %d", population, c.Population)
	}
	return nil
}

func (w *worldContext) civilizationShouldHaveResources(id int, resources int64) error {
	c, err := w.civ(id)
	if err != nil {
		return err
	}
	if c.Resources != resources {
		return fmt.Errorf("expected resources %d, got %d", resources, c.Resources)
	}
	return nil
}

func (w *worldContext) theHistoryOfCivilizationShouldEndWith(id int, line string) error {
	c, err := w.civ(id)
	if err != nil {
		return err
	}
	history := c.History()
	if len(history) == 0 || history[len(history)-1] != line {
		return fmt.Errorf("expected history to end with %q, got %v", line, history)
	}
	return nil
}

func (w *worldContext) theHistoryOfCivilizationShouldContain(id int, line string) error {
	c, err := w.civ(id)
	if err != nil {
		return err
	}
	for _, h := range c.History() {
		if h == line {
			return nil
		}
	}
	return fmt.Errorf("expected history to contain %q, got %v", line, c.History())
}

func (w *worldContext) planetShouldBeUnoccupied(planetID int) error {
	if occupant, ok := w.galaxy.Occupant(planetID); ok {
		return fmt.Errorf("expected planet %d to be unoccupied, occupied by %d", planetID, occupant)
	}
	return nil
}

func (w *worldContext) planetShouldHaveNoLife(planetID int) error {
	p, err := w.galaxy.Planet(planetID)
	if err != nil {
		return err
	}
	if p.HasLife || p.HasIntelligentLife {
		return fmt.Errorf("expected planet %d to be sterile", planetID)
	}
	return nil
}

func (w *worldContext) theOperationShouldFailWith(fragment string) error {
	if w.err == nil {
		return fmt.Errorf("expected an error containing %q, got none", fragment)
	}
	if !strings.Contains(w.err.Error(), fragment) {
		return fmt.Errorf("expected an error containing %q, got %q", fragment, w.err.Error())
	}
	return nil
}

func newEventManager(w *worldContext, seed int64) *events.Manager {
	return events.NewManager(w.galaxy, w.roster, shared.NewRNG(seed), w.rates)
}

// InitializeWorldScenario registers civilization lifecycle, war and event steps
func InitializeWorldScenario(ctx *godog.ScenarioContext) {
	w := &worldContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		w.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a galaxy with (\d+) inhabited star systems?$`, w.aGalaxyWithInhabitedStarSystems)
	ctx.Step(`^a galaxy with a single inhabited planet$`, w.aGalaxyWithASingleInhabitedPlanet)
	ctx.Step(`^the following civilizations:$`, w.theFollowingCivilizations)
	ctx.Step(`^civilization (\d+) has (\d+) resources$`, w.civilizationHasResources)

	// When steps
	ctx.Step(`^civilization (\d+) grows$`, w.civilizationGrows)
	ctx.Step(`^civilization (\d+) expands$`, w.civilizationExpands)
	ctx.Step(`^civilization (\d+) collapses due to "([^"]*)"$`, w.civilizationCollapsesDueTo)

	// Then steps
	ctx.Step(`^civilization (\d+) should be "([^"]*)"$`, w.civilizationShouldBe)
	ctx.Step(`^civilization (\d+) should have collapse reason "([^"]*)"$`, w.civilizationShouldHaveCollapseReason)
	ctx.Step(`^civilization (\d+) should own (\d+) planets?$`, w.civilizationShouldOwnPlanets)
	ctx.Step(`^civilization (\d+) should have a population of (\d+)$`, w.civilizationShouldHaveAPopulationOf)
	ctx.Step(`^civilization (\d+) should have a population above (\d+)$`, w.civilizationShouldHaveAPopulationAbove)
	ctx.Step(`^civilization (\d+) should have (\d+) resources$`, w.civilizationShouldHaveResources)
	ctx.Step(`^the history of civilization (\d+) should end with "([^"]*)"$`, w.theHistoryOfCivilizationShouldEndWith)
	ctx.Step(`^the history of civilization (\d+) should contain "([^"]*)"$`, w.theHistoryOfCivilizationShouldContain)
	ctx.Step(`^planet (\d+) should be unoccupied$`, w.planetShouldBeUnoccupied)
	ctx.Step(`^planet (\d+) should have no life$`, w.planetShouldHaveNoLife)
	ctx.Step(`^the operation should fail with "([^"]*)"$`, w.theOperationShouldFailWith)

	registerWarSteps(ctx, w)
	registerEventSteps(ctx, w)
}
