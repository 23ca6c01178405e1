package app

import (
	"context"
	"fmt"

	"github.com/example/skylark/internal/core/eligibility"
	"github.com/example/skylark/internal/models"
	"github.com/example/skylark/internal/ports/primary"
	"github.com/example/skylark/internal/ports/secondary"
)

// QueryServiceImpl implements the QueryService interface. Read-only: the
// catalog is never mutated from here.
type QueryServiceImpl struct {
	catalog secondary.Catalog
	clock   secondary.Clock
}

// NewQueryService creates a new QueryService with injected dependencies.
func NewQueryService(catalog secondary.Catalog, clock secondary.Clock) *QueryServiceImpl {
	return &QueryServiceImpl{catalog: catalog, clock: clock}
}

// QueryPilots lists available pilots matching the filters, in catalog
// order. Availability uses the same rule as dispatch: status Available and
// available-from on or before the reference date.
func (s *QueryServiceImpl) QueryPilots(ctx context.Context, filters primary.PilotFilters) ([]*primary.PilotSummary, error) {
	ref := s.clock.Now()
	pilots, err := s.catalog.ScanPilots(ctx, func(p models.Pilot) bool {
		if !eligibility.PilotAvailable(p, ref).Allowed {
			return false
		}
		if filters.Skill != "" && !p.Skills.AnyContains(filters.Skill) {
			return false
		}
		if filters.Location != "" && p.Location != filters.Location {
			return false
		}
		if filters.Certification != "" && !p.Certifications.AnyContains(filters.Certification) {
			return false
		}
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan pilots: %w", err)
	}

	out := make([]*primary.PilotSummary, len(pilots))
	for i, p := range pilots {
		out[i] = &primary.PilotSummary{
			ID:        p.ID,
			Name:      p.Name,
			Location:  p.Location,
			DailyRate: p.DailyRate,
		}
	}
	return out, nil
}

// QueryDrones lists available drones matching the filters, in catalog
// order.
func (s *QueryServiceImpl) QueryDrones(ctx context.Context, filters primary.DroneFilters) ([]*primary.DroneSummary, error) {
	drones, err := s.catalog.ScanDrones(ctx, func(d models.Drone) bool {
		if d.Status != models.DroneAvailable {
			return false
		}
		if filters.Capability != "" && !d.Capabilities.AnyContains(filters.Capability) {
			return false
		}
		if filters.Location != "" && d.Location != filters.Location {
			return false
		}
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan drones: %w", err)
	}

	out := make([]*primary.DroneSummary, len(drones))
	for i, d := range drones {
		out[i] = &primary.DroneSummary{
			ID:       d.ID,
			Model:    d.Model,
			Location: d.Location,
		}
	}
	return out, nil
}
