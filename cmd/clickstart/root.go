package main

import (
	"github.com/spf13/cobra"
)

// Overridden at build time via -ldflags "-X main.version=...".
var version = "dev"

var verbose bool

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "clickstart",
		Short:         "Scaffold Click-based Python CLI projects",
		Long:          "clickstart generates Python command-line projects with a Click entry point,\nan API stub, split unit/integration test scaffolding, and opinionated build\nand lint configuration.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newNewCmd())
	cmd.AddCommand(newUpdateCmd())
	return cmd
}
