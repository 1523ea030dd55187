package steps

import (
	"fmt"
	"strings"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/galaxysim/internal/domain/events"
)

const eventSeed = 1

func (w *worldContext) eventRates(table *godog.Table) error {
	for _, row := range dataRows(table) {
		rate, err := cellFloat(table, row, "rate")
		if err != nil {
			return err
		}
		switch events.Kind(cellValue(table, row, "event")) {
		case events.KindSupernova:
			w.rates.Supernova = rate
		case events.KindAsteroidImpact:
			w.rates.AsteroidImpact = rate
		case events.KindBlackHole:
			w.rates.BlackHole = rate
		case events.KindRevolt:
			w.rates.Revolt = rate
		case events.KindGoldenAge:
			w.rates.GoldenAge = rate
		case events.KindPlague:
			w.rates.Plague = rate
		case events.KindResourceBoom:
			w.rates.ResourceBoom = rate
		case events.KindResourceCrash:
			w.rates.ResourceCrash = rate
		default:
			return fmt.Errorf("unknown event %q", cellValue(table, row, "event"))
		}
	}
	return nil
}

func (w *worldContext) eventsAreTriggeredAtStep(step int) error {
	if w.events == nil {
		w.events = newEventManager(w, eventSeed)
	}
	w.events.Trigger(step)
	return nil
}

func (w *worldContext) theEventLogShouldContain(line string) error {
	if w.events == nil {
		return fmt.Errorf("no events were triggered")
	}
	for _, l := range w.events.Log() {
		if l == line {
			return nil
		}
	}
	return fmt.Errorf("expected event log to contain %q, got:\n%s", line, events.FormatLog(w.events.Log()))
}

func (w *worldContext) theEventLogShouldHaveEntries(count int) error {
	if w.events == nil {
		return fmt.Errorf("no events were triggered")
	}
	if got := len(w.events.Log()); got != count {
		return fmt.Errorf("expected %d event log entries, got %d:\n%s", count, got, strings.Join(w.events.Log(), "\n"))
	}
	return nil
}

func (w *worldContext) everyEntryShouldBeRecordedAtStep(step int) error {
	for _, e := range w.events.Entries() {
		if e.Step != step {
			return fmt.Errorf("entry %q recorded at step %d, expected %d", e.Message, e.Step, step)
		}
	}
	return nil
}

func registerEventSteps(ctx *godog.ScenarioContext, w *worldContext) {
	ctx.Step(`^event rates:$`, w.eventRates)
	ctx.Step(`^events are triggered at step (\d+)$`, w.eventsAreTriggeredAtStep)
	ctx.Step(`^the event log should contain "([^"]*)"$`, w.theEventLogShouldContain)
	ctx.Step(`^the event log should have (\d+) entr(?:y|ies)$`, w.theEventLogShouldHaveEntries)
	ctx.Step(`^every entry should be recorded at step (\d+)$`, w.everyEntryShouldBeRecordedAtStep)
}
