package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/skylark/internal/ports/primary"
	"github.com/example/skylark/internal/wire"
)

// AssignCmd returns the assign command
func AssignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assign [pilot_id] [drone_id] [mission_id]",
		Short: "Assign a pilot and drone to a mission",
		Long: `Check a (pilot, drone, mission) triple against every eligibility rule
and, if all pass, book both resources onto the mission.

On rejection, every failed rule is listed - not just the first one.

Examples:
  skylark assign P001 D001 PRJ001`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if _, err := wire.LoadCatalog(ctx); err != nil {
				return fmt.Errorf("failed to load catalog: %w", err)
			}

			resp, err := wire.DispatchService().Assign(ctx, primary.AssignRequest{
				PilotID:   args[0],
				DroneID:   args[1],
				MissionID: args[2],
			})
			if err != nil {
				return fmt.Errorf("failed to assign: %w", err)
			}

			if resp.Assigned {
				check := color.New(color.FgGreen).Sprint("✓")
				fmt.Printf("%s Assigned %s + %s to %s (cost %d)\n", check, args[0], args[1], args[2], resp.Cost)
				return nil
			}

			cross := color.New(color.FgRed).Sprint("✗")
			fmt.Printf("%s Cannot assign %s + %s to %s:\n", cross, args[0], args[1], args[2])
			for _, v := range resp.Violations {
				fmt.Printf("  - %s\n", v)
			}
			return nil
		},
	}

	return cmd
}
