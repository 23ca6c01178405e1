package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/skylark/internal/ports/primary"
	"github.com/example/skylark/internal/wire"
)

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status [pilot_id] [new_status]",
		Short: "Override a pilot's status",
		Long: `Set a pilot's status directly (Available, Assigned, OnLeave).

Setting a pilot to Available releases their current assignment.

Examples:
  skylark status P002 Available
  skylark status P001 OnLeave`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if _, err := wire.LoadCatalog(ctx); err != nil {
				return fmt.Errorf("failed to load catalog: %w", err)
			}

			resp, err := wire.RosterService().UpdatePilotStatus(ctx, primary.UpdateStatusRequest{
				PilotID: args[0],
				Status:  args[1],
			})
			if err != nil {
				return fmt.Errorf("failed to update status: %w", err)
			}

			check := color.New(color.FgGreen).Sprint("✓")
			if resp.ClearedAssignment != "" {
				fmt.Printf("%s %s is now %s (released from %s)\n", check, resp.PilotID, resp.Status, resp.ClearedAssignment)
			} else {
				fmt.Printf("%s %s is now %s\n", check, resp.PilotID, resp.Status)
			}
			return nil
		},
	}

	return cmd
}
