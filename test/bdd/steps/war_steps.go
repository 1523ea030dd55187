package steps

import (
	"fmt"

	"github.com/cucumber/godog"
)

func (w *worldContext) civilizationHasDeclaredWarOn(aggressor, defender int) error {
	a, err := w.civ(aggressor)
	if err != nil {
		return err
	}
	d, err := w.civ(defender)
	if err != nil {
		return err
	}
	return w.wars.Declare(a, d)
}

func (w *worldContext) civilizationDeclaresWarOn(aggressor, defender int) error {
	a, err := w.civ(aggressor)
	if err != nil {
		return err
	}
	d, err := w.civ(defender)
	if err != nil {
		return err
	}
	w.err = w.wars.Declare(a, d)
	return nil
}

func (w *worldContext) theWarBetweenIsResolved(first, second int) error {
	a, err := w.civ(first)
	if err != nil {
		return err
	}
	b, err := w.civ(second)
	if err != nil {
		return err
	}
	_, w.err = w.wars.Resolve(a, b)
	return nil
}

func (w *worldContext) thereShouldBeActiveWars(count int) error {
	if got := len(w.wars.Active()); got != count {
		return fmt.Errorf("expected %d active wars, got %d", count, got)
	}
	return nil
}

func registerWarSteps(ctx *godog.ScenarioContext, w *worldContext) {
	ctx.Step(`^civilization (\d+) has declared war on civilization (\d+)$`, w.civilizationHasDeclaredWarOn)
	ctx.Step(`^civilization (\d+) declares war on civilization (\d+)$`, w.civilizationDeclaresWarOn)
	ctx.Step(`^the war between civilization (\d+) and civilization (\d+) is resolved$`, w.theWarBetweenIsResolved)
	ctx.Step(`^there should be (\d+) active wars?$`, w.thereShouldBeActiveWars)
}
