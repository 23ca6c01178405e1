package primary

import "context"

// RosterService defines the primary port for operator-driven pilot status
// changes.
type RosterService interface {
	// UpdatePilotStatus sets a pilot's status unconditionally. This is an
	// operator override, not a workflow transition: no legality check
	// between status pairs. Returning a pilot to Available clears their
	// current assignment.
	UpdatePilotStatus(ctx context.Context, req UpdateStatusRequest) (*UpdateStatusResponse, error)
}

// UpdateStatusRequest contains the parameters for a status override.
type UpdateStatusRequest struct {
	PilotID string
	Status  string
}

// UpdateStatusResponse reports the applied override.
type UpdateStatusResponse struct {
	PilotID           string
	Status            string
	ClearedAssignment string // mission the pilot was released from, if any
}
