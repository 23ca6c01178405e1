package secondary

import (
	"context"
	"time"
)

// DecisionLog defines the secondary port for the assignment audit trail.
// Every dispatch attempt is recorded with its outcome so operators can
// reconstruct why a pairing was accepted or rejected.
type DecisionLog interface {
	// Record appends one decision entry. Logging failures must not block
	// the dispatch path; callers log and move on.
	Record(ctx context.Context, entry DecisionEntry) error

	// Recent returns up to limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]DecisionEntry, error)
}

// DecisionEntry is one row of the audit trail.
type DecisionEntry struct {
	ID         int64
	PilotID    string
	DroneID    string
	MissionID  string
	Assigned   bool
	Violations []string
	DecidedAt  time.Time
}
