package app

import (
	"context"
	"fmt"

	"github.com/example/skylark/internal/core/eligibility"
	"github.com/example/skylark/internal/models"
	"github.com/example/skylark/internal/ports/primary"
	"github.com/example/skylark/internal/ports/secondary"
)

// RosterServiceImpl implements the RosterService interface.
type RosterServiceImpl struct {
	catalog secondary.Catalog
}

// NewRosterService creates a new RosterService with injected dependencies.
func NewRosterService(catalog secondary.Catalog) *RosterServiceImpl {
	return &RosterServiceImpl{catalog: catalog}
}

// UpdatePilotStatus applies an operator status override. Returning to
// Available releases the pilot's mission bookkeeping; the drone and
// mission side stay as they are.
func (s *RosterServiceImpl) UpdatePilotStatus(ctx context.Context, req primary.UpdateStatusRequest) (*primary.UpdateStatusResponse, error) {
	status, err := models.ParsePilotStatus(req.Status)
	if err != nil {
		return nil, err
	}

	override := eligibility.ApplyStatusOverride(status)
	prior, err := s.catalog.OverridePilotStatus(ctx, req.PilotID, override.NewStatus, override.ClearAssignment)
	if err != nil {
		return nil, fmt.Errorf("failed to update pilot status: %w", err)
	}

	resp := &primary.UpdateStatusResponse{
		PilotID: req.PilotID,
		Status:  string(override.NewStatus),
	}
	if override.ClearAssignment {
		resp.ClearedAssignment = prior
	}
	return resp, nil
}
