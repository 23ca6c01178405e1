// Package primary defines the primary ports (driving adapters) for the
// application. These are the interfaces through which the outside world
// drives the dispatch core.
package primary

import "context"

// DispatchService defines the primary port for assignment operations.
type DispatchService interface {
	// Assign evaluates a (pilot, drone, mission) triple and, when every
	// eligibility rule passes, books both resources onto the mission.
	// Unknown identifiers return an error; rule failures return a
	// rejected response with the full violation list, leaving the
	// catalog untouched.
	Assign(ctx context.Context, req AssignRequest) (*AssignResponse, error)
}

// AssignRequest contains the identifiers of the candidate triple.
type AssignRequest struct {
	PilotID   string
	DroneID   string
	MissionID string
}

// AssignResponse contains the verdict for an assignment attempt.
type AssignResponse struct {
	Assigned bool
	// Violations lists the reasons the triple was rejected, in rule
	// order. Empty when Assigned is true.
	Violations []string
	// Cost is the pilot cost over the mission window, reported on every
	// attempt that reached evaluation.
	Cost int64
}

// Message renders the verdict as a single operator-facing line, matching
// the chat-style reply format.
func (r *AssignResponse) Message() string {
	if r.Assigned {
		return "Assigned"
	}
	msg := "Rejected"
	for _, v := range r.Violations {
		msg += "; " + v
	}
	return msg
}
