package models

import (
	"fmt"
	"strings"
	"time"
)

// DroneStatus represents the possible states of a drone.
type DroneStatus string

const (
	DroneAvailable   DroneStatus = "Available"
	DroneAssigned    DroneStatus = "Assigned"
	DroneMaintenance DroneStatus = "Maintenance"
)

// ParseDroneStatus validates a status string from external input.
func ParseDroneStatus(s string) (DroneStatus, error) {
	switch DroneStatus(s) {
	case DroneAvailable, DroneAssigned, DroneMaintenance:
		return DroneStatus(s), nil
	}
	return "", fmt.Errorf("unknown drone status %q (must be Available, Assigned, or Maintenance)", s)
}

// Drone is an aircraft that can be assigned to at most one mission.
// Same Status/CurrentAssignment invariant as Pilot.
type Drone struct {
	ID                string
	Model             string
	Capabilities      TokenSet
	Status            DroneStatus
	Location          string
	CurrentAssignment string
	MaintenanceDue    time.Time
	// WeatherResistance is the classification tag from the fleet sheet,
	// e.g. "Rated for rain" or "Clear-sky-only".
	WeatherResistance string
}

// RainRated reports whether the drone tolerates any forecast. Fleet sheets
// are inconsistent about the exact wording, so any tag mentioning rain
// counts.
func (d Drone) RainRated() bool {
	return strings.Contains(strings.ToLower(d.WeatherResistance), "rain")
}

// Clone returns an independent copy of the drone.
func (d Drone) Clone() Drone {
	out := d
	out.Capabilities = d.Capabilities.Clone()
	return out
}

// Validate checks invariants that must hold for a loaded drone record.
func (d Drone) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("drone has no ID")
	}
	if _, err := ParseDroneStatus(string(d.Status)); err != nil {
		return fmt.Errorf("drone %s: %w", d.ID, err)
	}
	if d.Status == DroneAssigned && d.CurrentAssignment == "" {
		return fmt.Errorf("drone %s: Assigned but no current assignment", d.ID)
	}
	if d.Status == DroneAvailable && d.CurrentAssignment != "" {
		return fmt.Errorf("drone %s: Available but still assigned to %s", d.ID, d.CurrentAssignment)
	}
	return nil
}
