// =============================================================================
// Automated Data Analysis - Validate Command
// =============================================================================
//
// COMMAND USAGE:
//   analyzer validate [--config analyzer.yaml]
//
// Loads the configuration exactly as 'analyze' would (defaults, file,
// environment), validates it and prints the effective settings as YAML.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration and print the effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to render configuration: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Configuration is valid.")
		fmt.Fprintln(out)
		_, err = out.Write(data)
		return err
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
