package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/andrescamacho/galaxysim/internal/adapters/metrics"
	"github.com/andrescamacho/galaxysim/internal/adapters/persistence"
	"github.com/andrescamacho/galaxysim/internal/application/mediator"
	"github.com/andrescamacho/galaxysim/internal/application/simulation"
	"github.com/andrescamacho/galaxysim/internal/application/simulation/commands"
	"github.com/andrescamacho/galaxysim/internal/application/simulation/queries"
	"github.com/andrescamacho/galaxysim/internal/domain/events"
	"github.com/andrescamacho/galaxysim/internal/domain/run"
	"github.com/andrescamacho/galaxysim/internal/infrastructure/config"
	"github.com/andrescamacho/galaxysim/internal/infrastructure/database"
	"github.com/andrescamacho/galaxysim/internal/infrastructure/logging"
)

const metricsShutdownTimeout = 5 * time.Second

// app holds everything a command needs for one invocation
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	mediator mediator.Mediator

	db            *gorm.DB
	runRepo       run.Repository
	logCloser     io.Closer
	metricsServer *metrics.Server
}

// newApp loads configuration, sets up logging and metrics, and registers
// handlers. The run archive is opened only when withArchive is set.
func newApp(withArchive bool) (*app, error) {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	logger, closer, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	a := &app{
		cfg:       cfg,
		logger:    logger,
		mediator:  mediator.NewMediator(),
		logCloser: closer,
	}

	if cfg.Metrics.Enabled {
		if err := a.startMetrics(); err != nil {
			a.Close()
			return nil, err
		}
	}

	if withArchive {
		if err := a.openArchive(); err != nil {
			a.Close()
			return nil, err
		}
	}

	if err := a.registerHandlers(); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *app) startMetrics() error {
	if !metrics.IsEnabled() {
		metrics.InitRegistry()

		simCollector := metrics.NewSimulationMetricsCollector()
		if err := simCollector.Register(); err != nil {
			return fmt.Errorf("failed to register simulation metrics: %w", err)
		}
		metrics.SetGlobalSimulationCollector(simCollector)

		cmdCollector := metrics.NewCommandMetricsCollector()
		if err := cmdCollector.Register(); err != nil {
			return fmt.Errorf("failed to register command metrics: %w", err)
		}
		a.mediator.RegisterMiddleware(metrics.PrometheusMiddleware(cmdCollector))
	}

	server := metrics.NewServer(a.cfg.Metrics.Host, a.cfg.Metrics.Port, a.cfg.Metrics.Path, a.logger)
	if err := server.Start(); err != nil {
		return err
	}
	a.metricsServer = server
	return nil
}

func (a *app) openArchive() error {
	db, err := database.NewConnection(&a.cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	a.db = db
	if err := database.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	a.runRepo = persistence.NewGormRunRepository(db)
	return nil
}

func (a *app) registerHandlers() error {
	if err := mediator.RegisterHandler[*commands.RunSimulationCommand](a.mediator,
		commands.NewRunSimulationHandler(a.runRepo, nil, a.logger)); err != nil {
		return err
	}
	if a.runRepo == nil {
		return nil
	}
	if err := mediator.RegisterHandler[*queries.GetRunQuery](a.mediator, queries.NewGetRunHandler(a.runRepo)); err != nil {
		return err
	}
	return mediator.RegisterHandler[*queries.ListRunsQuery](a.mediator, queries.NewListRunsHandler(a.runRepo))
}

// Close releases the database, the metrics server and the log file
func (a *app) Close() error {
	var errs []error
	if a.metricsServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
		errs = append(errs, a.metricsServer.Shutdown(ctx))
		cancel()
	}
	if a.db != nil {
		errs = append(errs, database.Close(a.db))
	}
	if a.logCloser != nil {
		errs = append(errs, a.logCloser.Close())
	}
	return errors.Join(errs...)
}

// simulationConfig converts the configured run parameters
func simulationConfig(sc config.SimulationConfig) simulation.Config {
	return simulation.Config{
		Stars:            sc.Stars,
		Civilizations:    sc.Civilizations,
		Seed:             sc.Seed,
		PropagationSpeed: sc.PropagationSpeed,
		EventsEnabled:    sc.EventsEnabled,
		EventRates:       events.DefaultRates(),
		AdaptivePolicy:   sc.AdaptivePolicy,
		SurveyDeposits:   sc.SurveyDeposits,
	}
}
