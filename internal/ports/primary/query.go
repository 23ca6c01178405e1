package primary

import "context"

// QueryService defines the primary port for read-only discovery queries.
type QueryService interface {
	// QueryPilots lists available pilots matching the optional filters.
	// Only pilots whose status is Available and whose available-from date
	// has passed are returned, in catalog order.
	QueryPilots(ctx context.Context, filters PilotFilters) ([]*PilotSummary, error)

	// QueryDrones lists available drones matching the optional filters,
	// in catalog order.
	QueryDrones(ctx context.Context, filters DroneFilters) ([]*DroneSummary, error)
}

// PilotFilters contains optional filters for pilot discovery. Zero values
// mean "no filter".
type PilotFilters struct {
	Skill         string // substring match against skills, case-sensitive
	Location      string // exact match
	Certification string // substring match against certifications
}

// PilotSummary is the default listing projection for a pilot. The full
// record stays behind the catalog.
type PilotSummary struct {
	ID        string
	Name      string
	Location  string
	DailyRate int64
}

// DroneFilters contains optional filters for drone discovery.
type DroneFilters struct {
	Capability string // substring match against capabilities
	Location   string // exact match
}

// DroneSummary is the default listing projection for a drone.
type DroneSummary struct {
	ID       string
	Model    string
	Location string
}
