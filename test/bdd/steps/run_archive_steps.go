package steps

import (
	"context"
	"fmt"
	"time"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/galaxysim/internal/adapters/persistence"
	"github.com/andrescamacho/galaxysim/internal/application/simulation"
	"github.com/andrescamacho/galaxysim/internal/application/simulation/commands"
	"github.com/andrescamacho/galaxysim/internal/application/simulation/queries"
	"github.com/andrescamacho/galaxysim/internal/domain/events"
	"github.com/andrescamacho/galaxysim/internal/domain/run"
	"github.com/andrescamacho/galaxysim/internal/domain/shared"
	"github.com/andrescamacho/galaxysim/test/helpers"
)

type runArchiveContext struct {
	repo    *persistence.GormRunRepository
	clock   *shared.MockClock
	runIDs  []string
	fetched *run.Record
	listed  []*queries.RunSummaryDTO
	err     error
}

func (r *runArchiveContext) reset() error {
	if err := helpers.TruncateAllTables(); err != nil {
		return err
	}
	r.repo = persistence.NewGormRunRepository(helpers.SharedTestDB)
	r.clock = shared.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	r.runIDs = nil
	r.fetched = nil
	r.listed = nil
	r.err = nil
	return nil
}

func (r *runArchiveContext) lastRunID() (string, error) {
	if len(r.runIDs) == 0 {
		return "", fmt.Errorf("no run has been archived")
	}
	return r.runIDs[len(r.runIDs)-1], nil
}

func (r *runArchiveContext) archive(ctx context.Context, seed int64, steps int) error {
	handler := commands.NewRunSimulationHandler(r.repo, r.clock, nil)
	resp, err := handler.Handle(ctx, &commands.RunSimulationCommand{
		Config: simulation.Config{
			Civilizations:    2,
			Seed:             seed,
			PropagationSpeed: 1,
			EventsEnabled:    true,
			EventRates:       events.DefaultRates(),
		},
		Steps:   steps,
		Persist: true,
		Galaxy:  helpers.NewCrowdedGalaxy(3),
	})
	if resp != nil {
		r.runIDs = append(r.runIDs, resp.(*commands.RunSimulationResponse).Record.ID)
	}
	r.clock.Advance(time.Minute)
	return err
}

// Given / When steps

func (r *runArchiveContext) anArchivedRunWithSeedForSteps(seed int64, steps int) error {
	return r.archive(context.Background(), seed, steps)
}

func (r *runArchiveContext) aRunWithSeedIsCancelledBeforeItStarts(seed int64) error {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r.err = r.archive(ctx, seed, 10)
	return nil
}

func (r *runArchiveContext) iFetchTheLastRun() error {
	id, err := r.lastRunID()
	if err != nil {
		return err
	}
	resp, err := queries.NewGetRunHandler(r.repo).Handle(context.Background(), &queries.GetRunQuery{RunID: id})
	if err != nil {
		r.err = err
		return nil
	}
	r.fetched = resp.(*queries.GetRunResponse).Run
	return nil
}

func (r *runArchiveContext) iFetchRun(id string) error {
	_, r.err = queries.NewGetRunHandler(r.repo).Handle(context.Background(), &queries.GetRunQuery{RunID: id})
	return nil
}

func (r *runArchiveContext) iListRunsWithStatus(status string) error {
	resp, err := queries.NewListRunsHandler(r.repo).Handle(context.Background(), &queries.ListRunsQuery{Status: status})
	if err != nil {
		r.err = err
		return nil
	}
	r.listed = resp.(*queries.ListRunsResponse).Runs
	return nil
}

func (r *runArchiveContext) iListAllRuns() error {
	return r.iListRunsWithStatus("")
}

// Then steps

func (r *runArchiveContext) theFetchedRunShouldHaveStatus(status string) error {
	if r.fetched == nil {
		return fmt.Errorf("no run fetched: %v", r.err)
	}
	if string(r.fetched.Status) != status {
		return fmt.Errorf("expected status %s, got %s", status, r.fetched.Status)
	}
	return nil
}

func (r *runArchiveContext) theFetchedRunShouldHaveStatisticsRows(count int) error {
	if r.fetched == nil {
		return fmt.Errorf("no run fetched: %v", r.err)
	}
	if len(r.fetched.Statistics) != count {
		return fmt.Errorf("expected %d statistics rows, got %d", count, len(r.fetched.Statistics))
	}
	return nil
}

func (r *runArchiveContext) theFetchedRunShouldHaveCivilizationSummaries(count int) error {
	if r.fetched == nil {
		return fmt.Errorf("no run fetched: %v", r.err)
	}
	if len(r.fetched.Civilizations) != count {
		return fmt.Errorf("expected %d civilization summaries, got %d", count, len(r.fetched.Civilizations))
	}
	return nil
}

func (r *runArchiveContext) theFetchedRunShouldRecordSeed(seed int64) error {
	if r.fetched == nil {
		return fmt.Errorf("no run fetched: %v", r.err)
	}
	if r.fetched.Parameters.Seed != seed {
		return fmt.Errorf("expected seed %d, got %d", seed, r.fetched.Parameters.Seed)
	}
	return nil
}

func (r *runArchiveContext) theListingShouldContainRuns(count int) error {
	if len(r.listed) != count {
		return fmt.Errorf("expected %d runs, got %d", count, len(r.listed))
	}
	return nil
}

func (r *runArchiveContext) theFirstListedRunShouldHaveSeed(seed int64) error {
	if len(r.listed) == 0 {
		return fmt.Errorf("listing is empty")
	}
	if r.listed[0].Seed != seed {
		return fmt.Errorf("expected newest run to have seed %d, got %d", seed, r.listed[0].Seed)
	}
	return nil
}

func (r *runArchiveContext) theRunShouldFailWith(fragment string) error {
	if r.err == nil {
		return fmt.Errorf("expected an error containing %q, got none", fragment)
	}
	if !containsText(r.err.Error(), fragment) {
		return fmt.Errorf("expected an error containing %q, got %q", fragment, r.err.Error())
	}
	return nil
}

// InitializeRunArchiveScenario registers run archive steps against the shared database
func InitializeRunArchiveScenario(ctx *godog.ScenarioContext) {
	r := &runArchiveContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, r.reset()
	})

	ctx.Step(`^an archived run with seed (\d+) for (\d+) steps$`, r.anArchivedRunWithSeedForSteps)
	ctx.Step(`^a run with seed (\d+) is cancelled before it starts$`, r.aRunWithSeedIsCancelledBeforeItStarts)
	ctx.Step(`^I fetch the last run$`, r.iFetchTheLastRun)
	ctx.Step(`^I fetch run "([^"]*)"$`, r.iFetchRun)
	ctx.Step(`^I list runs with status "([^"]*)"$`, r.iListRunsWithStatus)
	ctx.Step(`^I list all runs$`, r.iListAllRuns)

	ctx.Step(`^the fetched run should have status "([^"]*)"$`, r.theFetchedRunShouldHaveStatus)
	ctx.Step(`^the fetched run should have (\d+) statistics rows?$`, r.theFetchedRunShouldHaveStatisticsRows)
	ctx.Step(`^the fetched run should have (\d+) civilization summar(?:y|ies)$`, r.theFetchedRunShouldHaveCivilizationSummaries)
	ctx.Step(`^the fetched run should record seed (\d+)$`, r.theFetchedRunShouldRecordSeed)
	ctx.Step(`^the listing should contain (\d+) runs?$`, r.theListingShouldContainRuns)
	ctx.Step(`^the first listed run should have seed (\d+)$`, r.theFirstListedRunShouldHaveSeed)
	ctx.Step(`^the run archive should report "([^"]*)"$`, r.theRunShouldFailWith)
}
