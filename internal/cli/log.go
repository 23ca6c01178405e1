package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/skylark/internal/wire"
)

// LogCmd returns the log command
func LogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show recent assignment decisions",
		Long: `List the most recent entries from the decision audit trail,
newest first.

Examples:
  skylark log
  skylark log --limit 10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			dl := wire.DecisionLog()
			if dl == nil {
				return fmt.Errorf("no decision log configured (set decision_log_path)")
			}

			limit, _ := cmd.Flags().GetInt("limit")
			entries, err := dl.Recent(ctx, limit)
			if err != nil {
				return fmt.Errorf("failed to read decision log: %w", err)
			}

			if len(entries) == 0 {
				fmt.Println("No decisions recorded")
				return nil
			}

			for _, e := range entries {
				verdict := color.New(color.FgGreen).Sprint("ASSIGNED")
				if !e.Assigned {
					verdict = color.New(color.FgRed).Sprint("REJECTED")
				}
				fmt.Printf("%s  %s  %s + %s -> %s\n",
					e.DecidedAt.Format("2006-01-02 15:04:05"), verdict, e.PilotID, e.DroneID, e.MissionID)
				if len(e.Violations) > 0 {
					fmt.Printf("    %s\n", strings.Join(e.Violations, "; "))
				}
			}
			return nil
		},
	}

	cmd.Flags().Int("limit", 20, "Maximum number of entries to show")

	return cmd
}
