package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
		Long: `Inspect galaxysim configuration.

Configuration is loaded from multiple sources with priority:
1. Environment variables (GS_* prefix, plus DATABASE_URL)
2. Config file (config.yaml)
3. Default values

Example:
  galaxysim config show
  galaxysim config show --output json`,
	}

	cmd.AddCommand(newConfigShowCommand())

	return cmd
}

// newConfigShowCommand creates the config show subcommand
func newConfigShowCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != outputJSON && output != outputYAML {
				return fmt.Errorf("unsupported output format %q (use json or yaml)", output)
			}

			a, err := newApp(false)
			if err != nil {
				return err
			}
			defer a.Close()

			cfg := *a.cfg
			cfg.Database.URL = maskPassword(cfg.Database.URL)
			return writeStructured(cmd.OutOrStdout(), output, cfg)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputYAML, "Output format: json or yaml")

	return cmd
}

// maskPassword hides the password of a connection URL
func maskPassword(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	if _, ok := u.User.Password(); !ok {
		return raw
	}
	u.User = url.UserPassword(u.User.Username(), "xxxxx")
	return u.String()
}
