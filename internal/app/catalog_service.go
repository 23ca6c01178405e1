package app

import (
	"context"
	"fmt"

	"github.com/example/skylark/internal/ports/primary"
	"github.com/example/skylark/internal/ports/secondary"
)

// CatalogServiceImpl implements the CatalogService interface.
type CatalogServiceImpl struct {
	catalog secondary.Catalog
}

// NewCatalogService creates a new CatalogService with injected
// dependencies.
func NewCatalogService(catalog secondary.Catalog) *CatalogServiceImpl {
	return &CatalogServiceImpl{catalog: catalog}
}

// Load validates and swaps the tables present in the request. Validation
// runs over every record before any table is replaced, so a malformed
// sheet never half-loads.
func (s *CatalogServiceImpl) Load(ctx context.Context, req primary.LoadRequest) (*primary.LoadResponse, error) {
	for _, p := range req.Pilots {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("invalid pilot record: %w", err)
		}
	}
	for _, d := range req.Drones {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("invalid drone record: %w", err)
		}
	}
	for _, m := range req.Missions {
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("invalid mission record: %w", err)
		}
	}

	resp := &primary.LoadResponse{}
	if req.Pilots != nil {
		if err := s.catalog.ReplacePilots(ctx, req.Pilots); err != nil {
			return nil, fmt.Errorf("failed to replace pilots: %w", err)
		}
		resp.Pilots = len(req.Pilots)
	}
	if req.Drones != nil {
		if err := s.catalog.ReplaceDrones(ctx, req.Drones); err != nil {
			return nil, fmt.Errorf("failed to replace drones: %w", err)
		}
		resp.Drones = len(req.Drones)
	}
	if req.Missions != nil {
		if err := s.catalog.ReplaceMissions(ctx, req.Missions); err != nil {
			return nil, fmt.Errorf("failed to replace missions: %w", err)
		}
		resp.Missions = len(req.Missions)
	}
	return resp, nil
}
