package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/time/rate"

	"github.com/andrescamacho/galaxysim/internal/adapters/metrics"
	"github.com/andrescamacho/galaxysim/internal/application/mediator"
	"github.com/andrescamacho/galaxysim/internal/application/simulation"
	"github.com/andrescamacho/galaxysim/internal/domain/civilization"
	"github.com/andrescamacho/galaxysim/internal/domain/events"
	"github.com/andrescamacho/galaxysim/internal/domain/galaxy"
	"github.com/andrescamacho/galaxysim/internal/domain/run"
	"github.com/andrescamacho/galaxysim/internal/domain/shared"
	"github.com/andrescamacho/galaxysim/pkg/utils"
)

// RunSimulationCommand builds a simulation and runs it for a number of steps
type RunSimulationCommand struct {
	Config simulation.Config
	Steps  int

	// Pace is the maximum number of steps per second; 0 runs unthrottled
	Pace float64

	// Persist archives the finished run through the run repository
	Persist bool

	// Galaxy, when set, is used instead of generating one from Config
	Galaxy *galaxy.Galaxy
}

// RunSimulationResponse carries the archived record and the final simulation state
type RunSimulationResponse struct {
	Record     *run.Record
	Simulation *simulation.Simulation
}

// RunSimulationHandler handles the RunSimulation command
type RunSimulationHandler struct {
	runRepo run.Repository
	clock   shared.Clock
	logger  *slog.Logger
}

// NewRunSimulationHandler creates a new RunSimulationHandler.
// runRepo may be nil when runs are never persisted.
func NewRunSimulationHandler(runRepo run.Repository, clock shared.Clock, logger *slog.Logger) *RunSimulationHandler {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &RunSimulationHandler{
		runRepo: runRepo,
		clock:   clock,
		logger:  logger.With("component", "run_simulation"),
	}
}

// Handle executes the RunSimulation command.
//
// Cancellation stops the run between steps. The record is then CANCELLED,
// keeps every completed step, is still persisted if requested, and is
// returned together with the context error.
func (h *RunSimulationHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*RunSimulationCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *RunSimulationCommand")
	}
	if err := h.validate(cmd); err != nil {
		return nil, err
	}
	if cmd.Persist && h.runRepo == nil {
		return nil, fmt.Errorf("persist requested but no run repository is configured")
	}

	record := run.NewRecord(utils.GenerateRunID(cmd.Config.Seed), parametersFrom(cmd), h.clock)
	if err := record.Start(); err != nil {
		return nil, err
	}
	logger := h.logger.With("run_id", record.ID)

	opts := []simulation.Option{
		simulation.WithLogger(logger),
		simulation.WithObserver(recordStepMetrics),
	}
	if cmd.Galaxy != nil {
		opts = append(opts, simulation.WithGalaxy(cmd.Galaxy))
	}
	sim := simulation.New(cmd.Config, opts...)

	runErr := h.execute(ctx, sim, cmd)

	fillRecord(record, sim)
	if runErr != nil {
		_ = record.Cancel(runErr)
	} else {
		_ = record.Complete()
	}
	metrics.RecordRunCompletion(string(record.Status), record.Duration().Seconds(), record.StepsCompleted)

	if cmd.Persist {
		// a cancelled run is still archived
		if err := h.runRepo.Save(context.WithoutCancel(ctx), record); err != nil {
			return nil, fmt.Errorf("failed to save run: %w", err)
		}
	}

	logger.Info("run finished",
		"operation", "run_simulation",
		"status", string(record.Status),
		"steps", record.StepsCompleted,
		"civilizations", len(record.Civilizations),
		"events", len(record.Events),
		"persisted", cmd.Persist,
	)

	response := &RunSimulationResponse{Record: record, Simulation: sim}
	if runErr != nil {
		return response, fmt.Errorf("run %s stopped after %d steps: %w", record.ID, record.StepsCompleted, runErr)
	}
	return response, nil
}

func (h *RunSimulationHandler) validate(cmd *RunSimulationCommand) error {
	if cmd.Steps < 1 {
		return shared.NewValidationError("steps", "must be at least 1")
	}
	if cmd.Galaxy == nil && cmd.Config.Stars < 1 {
		return shared.NewValidationError("stars", "must be at least 1")
	}
	if cmd.Config.Civilizations < 0 {
		return shared.NewValidationError("civilizations", "must not be negative")
	}
	if cmd.Pace < 0 {
		return shared.NewValidationError("pace", "must not be negative")
	}
	return nil
}

func (h *RunSimulationHandler) execute(ctx context.Context, sim *simulation.Simulation, cmd *RunSimulationCommand) error {
	if cmd.Pace == 0 {
		_, err := sim.Run(ctx, cmd.Steps)
		return err
	}

	limiter := rate.NewLimiter(rate.Limit(cmd.Pace), 1)
	for i := 0; i < cmd.Steps; i++ {
		if err := limiter.Wait(ctx); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			return err
		}
		sim.Step()
	}
	return nil
}

func recordStepMetrics(stats simulation.Statistics, fired []events.Entry) {
	metrics.RecordStep(stats.AliveCivilizations, stats.TotalPopulation, stats.AverageTechLevel)
	for _, e := range fired {
		metrics.RecordEvent(string(e.Kind), e.Kind.IsCosmic())
	}
}

func parametersFrom(cmd *RunSimulationCommand) run.Parameters {
	return run.Parameters{
		Stars:            cmd.Config.Stars,
		Civilizations:    cmd.Config.Civilizations,
		Seed:             cmd.Config.Seed,
		Steps:            cmd.Steps,
		PropagationSpeed: cmd.Config.PropagationSpeed,
		EventsEnabled:    cmd.Config.EventsEnabled,
		AdaptivePolicy:   cmd.Config.AdaptivePolicy,
		SurveyDeposits:   cmd.Config.SurveyDeposits,
	}
}

func fillRecord(record *run.Record, sim *simulation.Simulation) {
	history := sim.History()
	record.Statistics = make([]run.StepStatistics, 0, len(history))
	for _, s := range history {
		record.Statistics = append(record.Statistics, run.StepStatistics{
			Step:               s.Step,
			AliveCivilizations: s.AliveCivilizations,
			TotalPopulation:    s.TotalPopulation,
			AverageTechLevel:   s.AverageTechLevel,
		})
	}

	civs := sim.Civilizations()
	record.Civilizations = make([]run.CivilizationSummary, 0, len(civs))
	for _, c := range civs {
		record.Civilizations = append(record.Civilizations, summarize(c))
	}

	entries := sim.EventEntries()
	record.Events = make([]run.EventEntry, 0, len(entries))
	for _, e := range entries {
		record.Events = append(record.Events, run.EventEntry{
			Step:    e.Step,
			Kind:    string(e.Kind),
			Message: e.Message,
		})
	}
}

func summarize(c *civilization.Civilization) run.CivilizationSummary {
	return run.CivilizationSummary{
		ID:             c.ID,
		HomePlanetID:   c.HomePlanet.ID,
		Status:         string(c.Status()),
		CollapseReason: c.CollapseReason(),
		Population:     c.Population,
		TechLevel:      c.TechLevel,
		Resources:      c.Resources,
		Planets:        len(c.Planets),
		Technologies:   append([]string(nil), c.Technologies...),
		Government:     string(c.Government),
		Economy:        string(c.Economy),
		Religion:       string(c.Religion),
		Language:       string(c.Language),
		History:        c.History(),
	}
}
