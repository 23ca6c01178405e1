// Package app implements the primary ports. Services orchestrate the
// functional core against the catalog: resolve records, run the pure
// rules, and apply the resulting transitions.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/example/skylark/internal/core/eligibility"
	"github.com/example/skylark/internal/ports/primary"
	"github.com/example/skylark/internal/ports/secondary"
)

// DispatchServiceImpl implements the DispatchService interface.
type DispatchServiceImpl struct {
	catalog   secondary.Catalog
	clock     secondary.Clock
	decisions secondary.DecisionLog
}

// NewDispatchService creates a new DispatchService with injected
// dependencies. decisions may be nil when no audit trail is configured.
func NewDispatchService(catalog secondary.Catalog, clock secondary.Clock, decisions secondary.DecisionLog) *DispatchServiceImpl {
	return &DispatchServiceImpl{
		catalog:   catalog,
		clock:     clock,
		decisions: decisions,
	}
}

// Assign evaluates the triple and books the pair when every rule passes.
func (s *DispatchServiceImpl) Assign(ctx context.Context, req primary.AssignRequest) (*primary.AssignResponse, error) {
	// 1. Resolve all three identifiers. Unknown IDs fail fast.
	pilot, err := s.catalog.GetPilot(ctx, req.PilotID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve pilot: %w", err)
	}
	drone, err := s.catalog.GetDrone(ctx, req.DroneID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve drone: %w", err)
	}
	mission, err := s.catalog.GetMission(ctx, req.MissionID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve mission: %w", err)
	}

	cost := pilot.DailyRate * mission.DurationDays()

	// 2. Pilot availability pre-check. Depends on the reference date, so
	// it lives outside the evaluator; when it fails the evaluator is not
	// consulted and the single reason stands alone.
	var violations []string
	if pre := eligibility.PilotAvailable(pilot, s.clock.Now()); !pre.Allowed {
		violations = []string{pre.Reason}
	} else {
		// 3. Full rule evaluation, all violations collected.
		violations = eligibility.Evaluate(pilot, drone, mission)
	}

	if len(violations) > 0 {
		s.record(ctx, req, false, violations)
		return &primary.AssignResponse{Assigned: false, Violations: violations, Cost: cost}, nil
	}

	// 4. Atomic transition: both records flip or neither does. The
	// catalog re-checks availability under its write lock, so a racing
	// dispatch on the same pilot or drone cannot also land here.
	if err := s.catalog.ApplyAssignment(ctx, req.PilotID, req.DroneID, req.MissionID); err != nil {
		return nil, fmt.Errorf("failed to apply assignment: %w", err)
	}

	s.record(ctx, req, true, nil)
	return &primary.AssignResponse{Assigned: true, Cost: cost}, nil
}

// record appends to the decision log, best effort. Audit failures never
// fail a dispatch.
func (s *DispatchServiceImpl) record(ctx context.Context, req primary.AssignRequest, assigned bool, violations []string) {
	if s.decisions == nil {
		return
	}
	entry := secondary.DecisionEntry{
		PilotID:    req.PilotID,
		DroneID:    req.DroneID,
		MissionID:  req.MissionID,
		Assigned:   assigned,
		Violations: violations,
		DecidedAt:  s.clock.Now(),
	}
	if err := s.decisions.Record(ctx, entry); err != nil {
		slog.Warn("failed to record dispatch decision", "pilot", req.PilotID, "error", err)
	}
}
