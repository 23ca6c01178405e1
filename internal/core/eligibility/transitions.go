package eligibility

import "github.com/example/skylark/internal/models"

// AssignmentTransition is a value object describing the state change a
// successful assignment applies to the pilot and drone. The mission record
// is never touched: the relation is carried entirely by the two
// back-references.
type AssignmentTransition struct {
	MissionID   string
	PilotStatus models.PilotStatus
	DroneStatus models.DroneStatus
}

// ApplyAssignment returns the transition for booking the pair onto a
// mission. Both records move to Assigned and point at the mission; the
// caller is responsible for writing both or neither.
func ApplyAssignment(missionID string) AssignmentTransition {
	return AssignmentTransition{
		MissionID:   missionID,
		PilotStatus: models.PilotAssigned,
		DroneStatus: models.DroneAssigned,
	}
}

// StatusOverride is a value object describing an operator-driven pilot
// status change. This is an override, not a workflow transition: any
// status pair is legal.
type StatusOverride struct {
	NewStatus models.PilotStatus
	// ClearAssignment is set when the override releases the pilot from
	// mission bookkeeping. Only the pilot's side is released: the drone and
	// mission are deliberately left alone (source-system behavior).
	ClearAssignment bool
}

// ApplyStatusOverride returns the override for setting a pilot's status.
// Returning to Available always clears the pilot's current assignment,
// whatever it was.
func ApplyStatusOverride(newStatus models.PilotStatus) StatusOverride {
	return StatusOverride{
		NewStatus:       newStatus,
		ClearAssignment: newStatus == models.PilotAvailable,
	}
}
