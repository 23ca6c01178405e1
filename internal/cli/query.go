package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/skylark/internal/ports/primary"
	"github.com/example/skylark/internal/wire"
)

// QueryCmd returns the query command with pilot and drone subcommands
func QueryCmd() *cobra.Command {
	queryCmd := &cobra.Command{
		Use:   "query",
		Short: "Query available pilots and drones",
		Long:  "List resources that are free for assignment, optionally filtered",
	}

	queryPilotsCmd := &cobra.Command{
		Use:   "pilots",
		Short: "List available pilots",
		Long: `List pilots that are Available and past their availability date.

Filters are case-sensitive. Skill and certification match any token
containing the given text; location is an exact match.

Examples:
  skylark query pilots
  skylark query pilots --skill Inspection --location Mumbai
  skylark query pilots --cert Night`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if _, err := wire.LoadCatalog(ctx); err != nil {
				return fmt.Errorf("failed to load catalog: %w", err)
			}

			skill, _ := cmd.Flags().GetString("skill")
			location, _ := cmd.Flags().GetString("location")
			cert, _ := cmd.Flags().GetString("cert")

			pilots, err := wire.QueryService().QueryPilots(ctx, primary.PilotFilters{
				Skill:         skill,
				Location:      location,
				Certification: cert,
			})
			if err != nil {
				return fmt.Errorf("failed to query pilots: %w", err)
			}

			if len(pilots) == 0 {
				fmt.Println("No available pilots found")
				return nil
			}

			fmt.Printf("%-8s %-20s %-15s %s\n", "ID", "NAME", "LOCATION", "DAILY RATE")
			for _, p := range pilots {
				fmt.Printf("%-8s %-20s %-15s %d\n", p.ID, p.Name, p.Location, p.DailyRate)
			}
			return nil
		},
	}
	queryPilotsCmd.Flags().String("skill", "", "Filter by skill (substring match)")
	queryPilotsCmd.Flags().String("location", "", "Filter by location (exact match)")
	queryPilotsCmd.Flags().String("cert", "", "Filter by certification (substring match)")

	queryDronesCmd := &cobra.Command{
		Use:   "drones",
		Short: "List available drones",
		Long: `List drones that are Available.

Examples:
  skylark query drones
  skylark query drones --capability Thermal --location Pune`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if _, err := wire.LoadCatalog(ctx); err != nil {
				return fmt.Errorf("failed to load catalog: %w", err)
			}

			capability, _ := cmd.Flags().GetString("capability")
			location, _ := cmd.Flags().GetString("location")

			drones, err := wire.QueryService().QueryDrones(ctx, primary.DroneFilters{
				Capability: capability,
				Location:   location,
			})
			if err != nil {
				return fmt.Errorf("failed to query drones: %w", err)
			}

			if len(drones) == 0 {
				fmt.Println("No available drones found")
				return nil
			}

			fmt.Printf("%-8s %-20s %s\n", "ID", "MODEL", "LOCATION")
			for _, d := range drones {
				fmt.Printf("%-8s %-20s %s\n", d.ID, d.Model, d.Location)
			}
			return nil
		},
	}
	queryDronesCmd.Flags().String("capability", "", "Filter by capability (substring match)")
	queryDronesCmd.Flags().String("location", "", "Filter by location (exact match)")

	queryCmd.AddCommand(queryPilotsCmd)
	queryCmd.AddCommand(queryDronesCmd)

	return queryCmd
}
