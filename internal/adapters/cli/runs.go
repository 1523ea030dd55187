package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/galaxysim/internal/application/simulation/queries"
)

// NewRunsCommand creates the runs command with subcommands
func NewRunsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Browse archived runs",
		Long: `List, inspect and delete runs archived with 'galaxysim run --persist'.

Examples:
  galaxysim runs list
  galaxysim runs list --status cancelled --seed 42
  galaxysim runs show <run-id>
  galaxysim runs show <run-id> --output yaml
  galaxysim runs delete <run-id>`,
	}

	cmd.AddCommand(newRunsListCommand())
	cmd.AddCommand(newRunsShowCommand())
	cmd.AddCommand(newRunsDeleteCommand())

	return cmd
}

func newRunsListCommand() *cobra.Command {
	var (
		status string
		seed   int64
		limit  int
		offset int
		output string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List archived runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}

			a, err := newApp(true)
			if err != nil {
				return err
			}
			defer a.Close()

			query := &queries.ListRunsQuery{Status: status, Limit: limit, Offset: offset}
			if cmd.Flags().Changed("seed") {
				query.Seed = &seed
			}
			resp, err := a.mediator.Send(cmd.Context(), query)
			if err != nil {
				return err
			}
			runs := resp.(*queries.ListRunsResponse).Runs

			out := cmd.OutOrStdout()
			if output != outputTable {
				return writeStructured(out, output, runs)
			}
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs found.")
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tSTATUS\tSEED\tSTARS\tCIVS\tSTEPS\tCREATED\tDURATION")
			for _, r := range runs {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d/%d\t%s\t%.2fs\n",
					r.ID, r.Status, r.Seed, r.Stars, r.Civilizations,
					r.StepsCompleted, r.StepsRequested, r.CreatedAt, r.DurationSeconds)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status (pending, running, completed, failed, cancelled)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Filter by seed")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to list")
	cmd.Flags().IntVar(&offset, "offset", 0, "Number of runs to skip")
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "Output format: table, json or yaml")

	return cmd
}

func newRunsShowCommand() *cobra.Command {
	var (
		output     string
		eventLimit int
	)

	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show an archived run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}

			a, err := newApp(true)
			if err != nil {
				return err
			}
			defer a.Close()

			resp, err := a.mediator.Send(cmd.Context(), &queries.GetRunQuery{RunID: args[0]})
			if err != nil {
				return err
			}
			record := resp.(*queries.GetRunResponse).Run

			out := cmd.OutOrStdout()
			if output != outputTable {
				return writeStructured(out, output, record)
			}

			printRunHeader(out, record)
			fmt.Fprintf(out, "  Created: %s  Duration: %s\n", record.CreatedAt.UTC().Format("2006-01-02 15:04:05"), record.Duration())
			if err := printCivilizations(out, record.Civilizations); err != nil {
				return err
			}
			printEvents(out, record.Events, eventLimit)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "Output format: table, json or yaml")
	cmd.Flags().IntVar(&eventLimit, "events", 20, "Number of most recent events to print (0 = all)")

	return cmd
}

func newRunsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <run-id>",
		Short: "Delete an archived run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(true)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.runRepo.Delete(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to delete run: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}
