package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "veldt",
		Short: "Test utilities for component-based UI trees",
		Long: `Veldt provides testing utilities for component-based UI rendering:

  • Query mounted instance trees by component type, tag, or class
  • Simulate native-shaped events through the real dispatch path
  • Inspect the supported event catalog`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		eventsCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}
