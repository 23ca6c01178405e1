// Package memory contains the in-memory implementation of the catalog
// port. The catalog is the single owner of all resource state: one lock
// serializes writes and reloads, reads hand out copies, and nothing
// outside this package can touch a stored record directly.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/example/skylark/internal/core/eligibility"
	"github.com/example/skylark/internal/models"
	"github.com/example/skylark/internal/ports/secondary"
)

// ErrNotFound is the port-level sentinel for unknown identifiers.
var ErrNotFound = secondary.ErrNotFound

// Catalog holds the three resource tables. Each table keeps a map for
// point lookups plus an ID slice preserving load order, so scans come back
// in the order the source sheet listed them.
type Catalog struct {
	mu sync.RWMutex

	pilots     map[string]models.Pilot
	pilotOrder []string

	drones     map[string]models.Drone
	droneOrder []string

	missions     map[string]models.Mission
	missionOrder []string
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		pilots:   make(map[string]models.Pilot),
		drones:   make(map[string]models.Drone),
		missions: make(map[string]models.Mission),
	}
}

// GetPilot retrieves a pilot by ID.
func (c *Catalog) GetPilot(_ context.Context, id string) (models.Pilot, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.pilots[id]
	if !ok {
		return models.Pilot{}, fmt.Errorf("pilot %s: %w", id, ErrNotFound)
	}
	return p.Clone(), nil
}

// GetDrone retrieves a drone by ID.
func (c *Catalog) GetDrone(_ context.Context, id string) (models.Drone, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	d, ok := c.drones[id]
	if !ok {
		return models.Drone{}, fmt.Errorf("drone %s: %w", id, ErrNotFound)
	}
	return d.Clone(), nil
}

// GetMission retrieves a mission by ID.
func (c *Catalog) GetMission(_ context.Context, id string) (models.Mission, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	m, ok := c.missions[id]
	if !ok {
		return models.Mission{}, fmt.Errorf("mission %s: %w", id, ErrNotFound)
	}
	return m.Clone(), nil
}

// ScanPilots returns pilots satisfying the predicate in load order.
func (c *Catalog) ScanPilots(_ context.Context, keep func(models.Pilot) bool) ([]models.Pilot, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []models.Pilot
	for _, id := range c.pilotOrder {
		if p := c.pilots[id]; keep == nil || keep(p) {
			out = append(out, p.Clone())
		}
	}
	return out, nil
}

// ScanDrones returns drones satisfying the predicate in load order.
func (c *Catalog) ScanDrones(_ context.Context, keep func(models.Drone) bool) ([]models.Drone, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []models.Drone
	for _, id := range c.droneOrder {
		if d := c.drones[id]; keep == nil || keep(d) {
			out = append(out, d.Clone())
		}
	}
	return out, nil
}

// ScanMissions returns missions satisfying the predicate in load order.
func (c *Catalog) ScanMissions(_ context.Context, keep func(models.Mission) bool) ([]models.Mission, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []models.Mission
	for _, id := range c.missionOrder {
		if m := c.missions[id]; keep == nil || keep(m) {
			out = append(out, m.Clone())
		}
	}
	return out, nil
}

// ReplacePilots atomically swaps the pilot table. Duplicate IDs reject the
// whole load.
func (c *Catalog) ReplacePilots(_ context.Context, records []models.Pilot) error {
	table := make(map[string]models.Pilot, len(records))
	order := make([]string, 0, len(records))
	for _, r := range records {
		if _, dup := table[r.ID]; dup {
			return fmt.Errorf("duplicate pilot ID %s", r.ID)
		}
		table[r.ID] = r.Clone()
		order = append(order, r.ID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.pilots = table
	c.pilotOrder = order
	return nil
}

// ReplaceDrones atomically swaps the drone table.
func (c *Catalog) ReplaceDrones(_ context.Context, records []models.Drone) error {
	table := make(map[string]models.Drone, len(records))
	order := make([]string, 0, len(records))
	for _, r := range records {
		if _, dup := table[r.ID]; dup {
			return fmt.Errorf("duplicate drone ID %s", r.ID)
		}
		table[r.ID] = r.Clone()
		order = append(order, r.ID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.drones = table
	c.droneOrder = order
	return nil
}

// ReplaceMissions atomically swaps the mission table.
func (c *Catalog) ReplaceMissions(_ context.Context, records []models.Mission) error {
	table := make(map[string]models.Mission, len(records))
	order := make([]string, 0, len(records))
	for _, r := range records {
		if _, dup := table[r.ID]; dup {
			return fmt.Errorf("duplicate mission ID %s", r.ID)
		}
		table[r.ID] = r.Clone()
		order = append(order, r.ID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.missions = table
	c.missionOrder = order
	return nil
}

// ApplyAssignment books the pilot and drone onto the mission. Both records
// are re-checked under the write lock so two racing assignments cannot
// both claim the same resource; the write is all-or-nothing.
func (c *Catalog) ApplyAssignment(_ context.Context, pilotID, droneID, missionID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.pilots[pilotID]
	if !ok {
		return fmt.Errorf("pilot %s: %w", pilotID, ErrNotFound)
	}
	d, ok := c.drones[droneID]
	if !ok {
		return fmt.Errorf("drone %s: %w", droneID, ErrNotFound)
	}
	if _, ok := c.missions[missionID]; !ok {
		return fmt.Errorf("mission %s: %w", missionID, ErrNotFound)
	}
	if p.Status != models.PilotAvailable {
		return fmt.Errorf("pilot %s no longer available", pilotID)
	}
	if d.Status != models.DroneAvailable {
		return fmt.Errorf("drone %s no longer available", droneID)
	}

	tr := eligibility.ApplyAssignment(missionID)
	p.Status = tr.PilotStatus
	p.CurrentAssignment = tr.MissionID
	d.Status = tr.DroneStatus
	d.CurrentAssignment = tr.MissionID
	c.pilots[pilotID] = p
	c.drones[droneID] = d
	return nil
}

// OverridePilotStatus applies an operator status override and returns the
// assignment the pilot held before it.
func (c *Catalog) OverridePilotStatus(_ context.Context, pilotID string, status models.PilotStatus, clearAssignment bool) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.pilots[pilotID]
	if !ok {
		return "", fmt.Errorf("pilot %s: %w", pilotID, ErrNotFound)
	}

	prior := p.CurrentAssignment
	p.Status = status
	if clearAssignment {
		p.CurrentAssignment = ""
	}
	c.pilots[pilotID] = p
	return prior, nil
}
