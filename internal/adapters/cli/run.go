package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/galaxysim/internal/application/simulation/commands"
)

// NewRunCommand creates the run command
func NewRunCommand() *cobra.Command {
	var (
		stars            int
		civilizations    int
		steps            int
		seed             int64
		pace             float64
		propagationSpeed float64
		noEvents         bool
		adaptivePolicy   bool
		surveyDeposits   bool
		persist          bool
		exportPath       string
		output           string
		eventLimit       int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate a galaxy and run the simulation",
		Long: `Generate a galaxy, seed civilizations and advance the simulation.

Flags override the simulation section of the configuration file. Press
Ctrl-C to stop early: completed steps are kept and, with --persist, the
run is archived as CANCELLED.

Examples:
  galaxysim run
  galaxysim run --stars 2000 --civilizations 20 --steps 300 --seed 7
  galaxysim run --pace 10 --steps 1000
  galaxysim run --persist --export run.json --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}

			a, err := newApp(persist)
			if err != nil {
				return err
			}
			defer a.Close()

			sc := a.cfg.Simulation
			flags := cmd.Flags()
			if flags.Changed("stars") {
				sc.Stars = stars
			}
			if flags.Changed("civilizations") {
				sc.Civilizations = civilizations
			}
			if flags.Changed("steps") {
				sc.Steps = steps
			}
			if flags.Changed("seed") {
				sc.Seed = seed
			}
			if flags.Changed("pace") {
				sc.Pace = pace
			}
			if flags.Changed("propagation-speed") {
				sc.PropagationSpeed = propagationSpeed
			}
			if flags.Changed("no-events") {
				sc.EventsEnabled = !noEvents
			}
			if flags.Changed("adaptive-policy") {
				sc.AdaptivePolicy = adaptivePolicy
			}
			if flags.Changed("survey-deposits") {
				sc.SurveyDeposits = surveyDeposits
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			resp, runErr := a.mediator.Send(ctx, &commands.RunSimulationCommand{
				Config:  simulationConfig(sc),
				Steps:   sc.Steps,
				Pace:    sc.Pace,
				Persist: persist,
			})
			if resp == nil {
				return runErr
			}
			result := resp.(*commands.RunSimulationResponse)

			if exportPath != "" {
				if err := exportRecord(exportPath, result.Record); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if output != outputTable {
				if err := writeStructured(out, output, result.Record); err != nil {
					return err
				}
				return runErr
			}

			summary := result.Simulation.Galaxy().Summarize()
			printRunHeader(out, result.Record)
			fmt.Fprintf(out, "  Galaxy: %d stars, %d planets, %d with life, %d with intelligent life\n",
				summary.Stars, summary.Planets, summary.WithLife, summary.WithIntelligence)
			if err := printCivilizations(out, result.Record.Civilizations); err != nil {
				return err
			}
			printEvents(out, result.Record.Events, eventLimit)
			if persist {
				fmt.Fprintf(out, "\nArchived as %s\n", result.Record.ID)
			}
			if exportPath != "" {
				fmt.Fprintf(out, "Exported to %s\n", exportPath)
			}
			return runErr
		},
	}

	cmd.Flags().IntVar(&stars, "stars", 0, "Number of stars to generate")
	cmd.Flags().IntVar(&civilizations, "civilizations", 0, "Number of civilizations to seed")
	cmd.Flags().IntVar(&steps, "steps", 0, "Number of steps to run")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed")
	cmd.Flags().Float64Var(&pace, "pace", 0, "Maximum steps per second (0 = unthrottled)")
	cmd.Flags().Float64Var(&propagationSpeed, "propagation-speed", 0, "Signal speed in light years per year")
	cmd.Flags().BoolVar(&noEvents, "no-events", false, "Disable random events")
	cmd.Flags().BoolVar(&adaptivePolicy, "adaptive-policy", false, "Let civilizations choose strategies and mutate traits")
	cmd.Flags().BoolVar(&surveyDeposits, "survey-deposits", false, "Generate mineral, energy and research deposits")
	cmd.Flags().BoolVar(&persist, "persist", false, "Archive the run in the database")
	cmd.Flags().StringVar(&exportPath, "export", "", "Write the full run to a YAML (or .json) file")
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "Output format: table, json or yaml")
	cmd.Flags().IntVar(&eventLimit, "events", 10, "Number of most recent events to print (0 = all)")

	return cmd
}
