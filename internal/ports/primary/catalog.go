package primary

import (
	"context"

	"github.com/example/skylark/internal/models"
)

// CatalogService defines the primary port for bulk catalog loading. The
// ingestion adapter parses external sheets into records and hands them
// here; the service validates and swaps whole tables atomically. Nil
// slices are skipped, so tables can be reloaded independently.
type CatalogService interface {
	// Load replaces the catalog tables present in the request. A
	// malformed record rejects the whole load: invalid source data
	// surfaces here, never during assignment.
	Load(ctx context.Context, req LoadRequest) (*LoadResponse, error)
}

// LoadRequest carries the parsed records for each entity kind to replace.
type LoadRequest struct {
	Pilots   []models.Pilot
	Drones   []models.Drone
	Missions []models.Mission
}

// LoadResponse reports how many records were loaded per table.
type LoadResponse struct {
	Pilots   int
	Drones   int
	Missions int
}
