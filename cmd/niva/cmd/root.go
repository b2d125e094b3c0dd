package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "niva",
		Short: "Niva donation platform",
		Long: `Niva serves the donation platform mockup: a landing page, a preferences
form and a donor dashboard.

Use "niva [command] --help" for more information about a command.`,
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd(), newRoutesCmd(), newEventsCmd(), newVersionCmd())
	return root
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
