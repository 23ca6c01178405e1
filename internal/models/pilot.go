package models

import (
	"fmt"
	"time"
)

// PilotStatus represents the possible states of a pilot.
type PilotStatus string

const (
	PilotAvailable PilotStatus = "Available"
	PilotAssigned  PilotStatus = "Assigned"
	PilotOnLeave   PilotStatus = "OnLeave"
)

// ParsePilotStatus validates a status string from external input.
func ParsePilotStatus(s string) (PilotStatus, error) {
	switch PilotStatus(s) {
	case PilotAvailable, PilotAssigned, PilotOnLeave:
		return PilotStatus(s), nil
	}
	return "", fmt.Errorf("unknown pilot status %q (must be Available, Assigned, or OnLeave)", s)
}

// Pilot is a field operator who can be assigned to at most one mission.
// Status and CurrentAssignment move together: Assigned means
// CurrentAssignment names a mission, anything else means it is empty.
type Pilot struct {
	ID             string
	Name           string
	Skills         TokenSet
	Certifications TokenSet
	Location       string
	Status         PilotStatus
	// CurrentAssignment is the mission ID when Status is Assigned, "" otherwise.
	CurrentAssignment string
	AvailableFrom     time.Time
	// DailyRate is the pilot's rate in whole currency units per mission day.
	DailyRate int64
}

// Clone returns an independent copy of the pilot.
func (p Pilot) Clone() Pilot {
	out := p
	out.Skills = p.Skills.Clone()
	out.Certifications = p.Certifications.Clone()
	return out
}

// Validate checks invariants that must hold for a loaded pilot record.
func (p Pilot) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("pilot has no ID")
	}
	if _, err := ParsePilotStatus(string(p.Status)); err != nil {
		return fmt.Errorf("pilot %s: %w", p.ID, err)
	}
	if p.Status == PilotAssigned && p.CurrentAssignment == "" {
		return fmt.Errorf("pilot %s: Assigned but no current assignment", p.ID)
	}
	if p.Status == PilotAvailable && p.CurrentAssignment != "" {
		return fmt.Errorf("pilot %s: Available but still assigned to %s", p.ID, p.CurrentAssignment)
	}
	if p.DailyRate < 0 {
		return fmt.Errorf("pilot %s: negative daily rate %d", p.ID, p.DailyRate)
	}
	return nil
}
