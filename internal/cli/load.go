package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/skylark/internal/wire"
)

// LoadCmd returns the load command
func LoadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load sheet exports into the catalog",
		Long: `Parse pilot, drone, and mission CSV exports and validate every record.

Paths default to the data section of the configuration file; flags
override them. A file with any invalid record is rejected whole.

Examples:
  skylark load
  skylark load --pilots pilots.csv --drones drones.csv --missions missions.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			pilots, _ := cmd.Flags().GetString("pilots")
			drones, _ := cmd.Flags().GetString("drones")
			missions, _ := cmd.Flags().GetString("missions")

			cfg := wire.Config()
			if pilots != "" {
				cfg.Data.Pilots = pilots
			}
			if drones != "" {
				cfg.Data.Drones = drones
			}
			if missions != "" {
				cfg.Data.Missions = missions
			}

			resp, err := wire.LoadCatalog(ctx)
			if err != nil {
				return fmt.Errorf("failed to load catalog: %w", err)
			}

			check := color.New(color.FgGreen).Sprint("✓")
			fmt.Printf("%s Loaded %d pilots, %d drones, %d missions\n",
				check, resp.Pilots, resp.Drones, resp.Missions)
			return nil
		},
	}

	cmd.Flags().String("pilots", "", "Path to the pilots CSV export")
	cmd.Flags().String("drones", "", "Path to the drones CSV export")
	cmd.Flags().String("missions", "", "Path to the missions CSV export")

	return cmd
}
