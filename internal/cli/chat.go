package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/skylark/internal/wire"
)

// ChatCmd returns the chat command
func ChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat [command...]",
		Short: "Run a chat-style dispatch command",
		Long: `Interpret one line of the chat command grammar and print the reply.

Supported commands:
  assign <pilot_id> <drone_id> <mission_id>
  query pilots [skill=X] [location=Y] [cert=Z]
  query drones [capability=X] [location=Y]
  update <pilot_id> <status>
  help

Examples:
  skylark chat assign P001 D001 PRJ001
  skylark chat query pilots skill=Thermal`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if _, err := wire.LoadCatalog(ctx); err != nil {
				return fmt.Errorf("failed to load catalog: %w", err)
			}

			reply, err := wire.Interpreter().Handle(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}

			fmt.Println(reply)
			return nil
		},
	}

	return cmd
}
