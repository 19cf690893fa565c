package commands

import (
	"github.com/spf13/cobra"

	"github.com/JoodasCode/ignorethem-sub001/pkg/output"
)

// Version is stamped by the release build.
var Version = "dev"

// RootCmd creates the root command for the ignorethem CLI.
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "ignorethem",
		Short: "Generate a production-ready SaaS starter stack",
		Long: `ignorethem interviews you about your project and generates a coherent
starter codebase from independently authored technology templates:
framework, auth, database, payments, analytics, email, monitoring, UI.

Templates are merged in dependency order with per-file-type conflict
resolution, then project variables are substituted and setup docs are
generated.`,
		Version: Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")

	return cmd
}
