package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/skylark/internal/cli"
	"github.com/example/skylark/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "skylark",
		Short:   "Skylark - pilot and drone dispatch for field missions",
		Version: version.String(),
		Long: `Skylark assigns drone pilots and drones to field missions.
It checks every eligibility rule before booking, answers availability
queries, and keeps an audit trail of assignment decisions.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.ServeCmd())
	rootCmd.AddCommand(cli.LoadCmd())
	rootCmd.AddCommand(cli.AssignCmd())
	rootCmd.AddCommand(cli.QueryCmd())
	rootCmd.AddCommand(cli.StatusCmd())
	rootCmd.AddCommand(cli.ChatCmd())
	rootCmd.AddCommand(cli.LogCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
