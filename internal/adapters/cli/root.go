package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "galaxysim",
		Short: "Galaxy generation and civilization simulation",
		Long: `galaxysim procedurally generates a galaxy of stars and planets, seeds
civilizations on planets with intelligent life, and advances a step-driven
simulation of growth, colonization, research, trade, diplomacy, war and
random cosmic events.

Runs are fully determined by their parameters and seed.

Examples:
  galaxysim run --stars 1000 --civilizations 10 --steps 100 --seed 42
  galaxysim run --steps 500 --persist --export run.yaml
  galaxysim galaxy --stars 5000 --seed 7
  galaxysim runs list --status completed
  galaxysim runs show <run-id> --output yaml
  galaxysim config show`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"Path to config file (default: ./config.yaml, ./configs/config.yaml, /etc/galaxysim/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")

	rootCmd.AddCommand(NewRunCommand())
	rootCmd.AddCommand(NewGalaxyCommand())
	rootCmd.AddCommand(NewRunsCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
