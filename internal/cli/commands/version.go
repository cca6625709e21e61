// Package commands implements the painel subcommands.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display painel version and build information.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "painel v%s\n", version)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Salary analytics dashboard built with Go and DuckDB")
		},
	}
}
