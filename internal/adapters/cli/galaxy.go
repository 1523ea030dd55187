package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/galaxysim/internal/domain/galaxy"
	"github.com/andrescamacho/galaxysim/internal/domain/shared"
)

// NewGalaxyCommand creates the galaxy command
func NewGalaxyCommand() *cobra.Command {
	var (
		stars          int
		seed           int64
		surveyDeposits bool
		output         string
	)

	cmd := &cobra.Command{
		Use:   "galaxy",
		Short: "Generate a galaxy and summarize it",
		Long: `Generate a galaxy without running the simulation and print counts of
stars by spectral class, planets by type, and planets with life.

The same stars and seed produce the same galaxy a run would start from.

Examples:
  galaxysim galaxy --stars 5000 --seed 7
  galaxysim galaxy --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}

			a, err := newApp(false)
			if err != nil {
				return err
			}
			defer a.Close()

			sc := a.cfg.Simulation
			if cmd.Flags().Changed("stars") {
				sc.Stars = stars
			}
			if cmd.Flags().Changed("seed") {
				sc.Seed = seed
			}
			if cmd.Flags().Changed("survey-deposits") {
				sc.SurveyDeposits = surveyDeposits
			}
			if sc.Stars < 1 {
				return shared.NewValidationError("stars", "must be at least 1")
			}

			g := galaxy.NewGenerator(shared.NewRNG(sc.Seed)).Generate(galaxy.GeneratorConfig{
				Stars:          sc.Stars,
				SurveyDeposits: sc.SurveyDeposits,
			})
			summary := g.Summarize()
			a.logger.Info("galaxy generated",
				"component", "cli",
				"stars", summary.Stars,
				"planets", summary.Planets,
				"intelligent", summary.WithIntelligence,
			)

			out := cmd.OutOrStdout()
			if output != outputTable {
				return writeStructured(out, output, summary)
			}

			fmt.Fprintf(out, "Galaxy (seed %d)\n", sc.Seed)
			fmt.Fprintf(out, "  Stars:                  %d\n", summary.Stars)
			fmt.Fprintf(out, "  Planets:                %d\n", summary.Planets)
			fmt.Fprintf(out, "  In habitable zone:      %d\n", summary.HabitableZone)
			fmt.Fprintf(out, "  With life:              %d\n", summary.WithLife)
			fmt.Fprintf(out, "  With intelligent life:  %d\n", summary.WithIntelligence)

			fmt.Fprintln(out)
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "CLASS\tSTARS")
			for _, class := range galaxy.AllSpectralClasses() {
				fmt.Fprintf(tw, "%s\t%d\n", class, summary.StarsByClass[class])
			}
			fmt.Fprintln(tw)
			fmt.Fprintln(tw, "PLANET TYPE\tPLANETS")
			for _, t := range galaxy.AllPlanetTypes() {
				fmt.Fprintf(tw, "%s\t%d\n", t, summary.PlanetsByType[t])
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVar(&stars, "stars", 0, "Number of stars to generate")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed")
	cmd.Flags().BoolVar(&surveyDeposits, "survey-deposits", false, "Generate mineral, energy and research deposits")
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "Output format: table, json or yaml")

	return cmd
}
