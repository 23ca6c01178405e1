// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application
// reaches the catalog store and other external systems.
package secondary

import (
	"context"
	"errors"

	"github.com/example/skylark/internal/models"
)

// ErrNotFound marks lookups against unknown identifiers. Adapters wrap it
// so callers can classify failures without knowing the store.
var ErrNotFound = errors.New("not found")

// Catalog defines the secondary port for the resource store. The catalog
// owns all Pilot/Drone/Mission state; the only mutation paths are the two
// write operations below plus whole-table Replace. Reads return copies -
// callers never see a record that a concurrent write is halfway through.
type Catalog interface {
	// GetPilot retrieves a pilot by ID. Returns ErrNotFound-wrapped
	// errors for unknown IDs.
	GetPilot(ctx context.Context, id string) (models.Pilot, error)

	// GetDrone retrieves a drone by ID.
	GetDrone(ctx context.Context, id string) (models.Drone, error)

	// GetMission retrieves a mission by ID.
	GetMission(ctx context.Context, id string) (models.Mission, error)

	// ScanPilots returns pilots satisfying the predicate, in catalog
	// insertion order.
	ScanPilots(ctx context.Context, keep func(models.Pilot) bool) ([]models.Pilot, error)

	// ScanDrones returns drones satisfying the predicate, in catalog
	// insertion order.
	ScanDrones(ctx context.Context, keep func(models.Drone) bool) ([]models.Drone, error)

	// ScanMissions returns missions satisfying the predicate, in catalog
	// insertion order.
	ScanMissions(ctx context.Context, keep func(models.Mission) bool) ([]models.Mission, error)

	// ReplacePilots atomically swaps the whole pilot table. Reloads are
	// exclusive with every other catalog operation.
	ReplacePilots(ctx context.Context, records []models.Pilot) error

	// ReplaceDrones atomically swaps the whole drone table.
	ReplaceDrones(ctx context.Context, records []models.Drone) error

	// ReplaceMissions atomically swaps the whole mission table.
	ReplaceMissions(ctx context.Context, records []models.Mission) error

	// ApplyAssignment books the pilot and drone onto the mission in one
	// step. Either both records change or neither does; a second
	// assignment racing on either resource loses.
	ApplyAssignment(ctx context.Context, pilotID, droneID, missionID string) error

	// OverridePilotStatus sets a pilot's status and, when clearAssignment
	// is set, releases the pilot from its current mission. Returns the
	// assignment the pilot held before the change.
	OverridePilotStatus(ctx context.Context, pilotID string, status models.PilotStatus, clearAssignment bool) (string, error)
}
