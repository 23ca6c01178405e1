// Package eligibility contains the pure business logic for assignment
// eligibility. This is part of the Functional Core - no I/O, only pure
// functions over resolved records.
package eligibility

import (
	"fmt"
	"strings"
	"time"

	"github.com/example/skylark/internal/models"
)

// RuleResult represents the outcome of a single eligibility rule.
type RuleResult struct {
	Allowed bool
	Reason  string // Human-readable reason (populated when not allowed)
}

// Error returns the rule result as an error if not allowed, nil otherwise.
func (r RuleResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// SkillMatch checks that the pilot shares at least one skill with the
// mission's requirements. Exact token match, case-sensitive.
func SkillMatch(p models.Pilot, m models.Mission) RuleResult {
	if len(m.RequiredSkills) == 0 || p.Skills.Intersects(m.RequiredSkills) {
		return RuleResult{Allowed: true}
	}
	return RuleResult{Allowed: false, Reason: "Skill mismatch"}
}

// CertMatch checks that the pilot holds at least one certification the
// mission requires.
func CertMatch(p models.Pilot, m models.Mission) RuleResult {
	if len(m.RequiredCerts) == 0 || p.Certifications.Intersects(m.RequiredCerts) {
		return RuleResult{Allowed: true}
	}
	return RuleResult{Allowed: false, Reason: "Cert mismatch"}
}

// PilotLocationMatch checks that the pilot is based at the mission site.
func PilotLocationMatch(p models.Pilot, m models.Mission) RuleResult {
	if p.Location == m.Location {
		return RuleResult{Allowed: true}
	}
	return RuleResult{Allowed: false, Reason: "Pilot location mismatch"}
}

// DroneLocationMatch checks that the drone is staged at the mission site.
func DroneLocationMatch(d models.Drone, m models.Mission) RuleResult {
	if d.Location == m.Location {
		return RuleResult{Allowed: true}
	}
	return RuleResult{Allowed: false, Reason: "Drone location mismatch"}
}

// BudgetCheck checks the pilot's total cost over the mission window against
// the mission budget. Cost is daily rate times the inclusive day count.
func BudgetCheck(p models.Pilot, m models.Mission) RuleResult {
	cost := p.DailyRate * m.DurationDays()
	if cost <= m.Budget {
		return RuleResult{Allowed: true}
	}
	return RuleResult{Allowed: false, Reason: fmt.Sprintf("Budget overrun: %d > %d", cost, m.Budget)}
}

// DroneAvailable checks the drone's equipment status.
func DroneAvailable(d models.Drone) RuleResult {
	if d.Status == models.DroneAvailable {
		return RuleResult{Allowed: true}
	}
	return RuleResult{Allowed: false, Reason: "Drone not available"}
}

// WeatherCompatible checks the drone's weather rating against the mission
// forecast. A rain-rated drone flies in anything; a clear-sky-only drone
// flies only under a Sunny forecast; every other combination is grounded.
func WeatherCompatible(d models.Drone, m models.Mission) RuleResult {
	if d.RainRated() {
		return RuleResult{Allowed: true}
	}
	if strings.EqualFold(m.WeatherForecast, "Sunny") {
		return RuleResult{Allowed: true}
	}
	return RuleResult{Allowed: false, Reason: "Weather incompatible"}
}

// PilotAvailable checks the pilot's own availability against the reference
// date. This is the dispatch pre-check, kept apart from Evaluate because it
// depends on mutable process state rather than static mission attributes.
func PilotAvailable(p models.Pilot, referenceDate time.Time) RuleResult {
	if p.Status != models.PilotAvailable {
		return RuleResult{Allowed: false, Reason: "Pilot not available"}
	}
	ref := referenceDate.Truncate(24 * time.Hour)
	from := p.AvailableFrom.Truncate(24 * time.Hour)
	if from.After(ref) {
		return RuleResult{Allowed: false, Reason: "Pilot not available"}
	}
	return RuleResult{Allowed: true}
}

// Evaluate runs every eligibility rule over the triple and collects all
// violations in rule order. Rules are never short-circuited: the operator
// gets the complete diagnostic list in one call instead of fixing failures
// one at a time. Calling Evaluate twice on the same triple yields the same
// list.
func Evaluate(p models.Pilot, d models.Drone, m models.Mission) []string {
	checks := []RuleResult{
		SkillMatch(p, m),
		CertMatch(p, m),
		PilotLocationMatch(p, m),
		DroneLocationMatch(d, m),
		BudgetCheck(p, m),
		DroneAvailable(d),
		WeatherCompatible(d, m),
	}

	var violations []string
	for _, c := range checks {
		if !c.Allowed {
			violations = append(violations, c.Reason)
		}
	}
	return violations
}
