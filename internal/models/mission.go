package models

import (
	"fmt"
	"time"
)

// MissionPriority is an ordinal priority level.
type MissionPriority int

const (
	PriorityStandard MissionPriority = iota
	PriorityHigh
	PriorityUrgent
)

// ParseMissionPriority maps a priority label to its ordinal.
func ParseMissionPriority(s string) (MissionPriority, error) {
	switch s {
	case "Standard", "":
		return PriorityStandard, nil
	case "High":
		return PriorityHigh, nil
	case "Urgent":
		return PriorityUrgent, nil
	}
	return 0, fmt.Errorf("unknown mission priority %q (must be Standard, High, or Urgent)", s)
}

// String returns the priority label.
func (p MissionPriority) String() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityUrgent:
		return "Urgent"
	default:
		return "Standard"
	}
}

// Mission is a time-bound client job. Missions are read-only to the core:
// the assignment relation lives on Pilot/Drone back-references, never here.
type Mission struct {
	ID             string
	Client         string
	Location       string
	RequiredSkills TokenSet
	RequiredCerts  TokenSet
	StartDate      time.Time
	EndDate        time.Time
	Priority       MissionPriority
	// Budget is the total mission budget in whole currency units.
	Budget int64
	// WeatherForecast is a categorical tag, e.g. "Sunny" or "Rainy".
	WeatherForecast string
}

// DurationDays is the number of mission days, inclusive of both endpoints.
func (m Mission) DurationDays() int64 {
	return int64(m.EndDate.Sub(m.StartDate).Hours()/24) + 1
}

// Clone returns an independent copy of the mission.
func (m Mission) Clone() Mission {
	out := m
	out.RequiredSkills = m.RequiredSkills.Clone()
	out.RequiredCerts = m.RequiredCerts.Clone()
	return out
}

// Validate checks invariants that must hold for a loaded mission record.
// Violations here are malformed source data and are rejected at load time,
// never during assignment.
func (m Mission) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("mission has no ID")
	}
	if m.EndDate.Before(m.StartDate) {
		return fmt.Errorf("mission %s: end date %s before start date %s",
			m.ID, m.EndDate.Format("2006-01-02"), m.StartDate.Format("2006-01-02"))
	}
	if m.Budget <= 0 {
		return fmt.Errorf("mission %s: budget must be positive, got %d", m.ID, m.Budget)
	}
	return nil
}
