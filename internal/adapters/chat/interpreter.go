// Package chat translates fixed-grammar operator commands into core
// operations. It is a thin front end: commands that do not match the
// grammar are rejected here and never reach the services.
//
// Supported commands:
//
//	assign <pilot_id> <drone_id> <mission_id>
//	query pilots [skill=X] [location=Y] [cert=Z]
//	query drones [capability=X] [location=Y]
//	update <pilot_id> <status>
//	help
package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/skylark/internal/models"
	"github.com/example/skylark/internal/ports/primary"
)

const helpText = `Commands:
  assign <pilot_id> <drone_id> <mission_id>
  query pilots [skill=X] [location=Y] [cert=Z]
  query drones [capability=X] [location=Y]
  update <pilot_id> <Available|Assigned|OnLeave>`

// Interpreter executes operator commands against the core services.
type Interpreter struct {
	dispatch primary.DispatchService
	query    primary.QueryService
	roster   primary.RosterService
}

// NewInterpreter creates an Interpreter over the given services.
func NewInterpreter(dispatch primary.DispatchService, query primary.QueryService, roster primary.RosterService) *Interpreter {
	return &Interpreter{dispatch: dispatch, query: query, roster: roster}
}

// Handle parses and executes one command line, returning the operator
// reply. Grammar errors come back as an error with a usage hint; service
// failures (unknown IDs) are reported in the reply's error.
func (i *Interpreter) Handle(ctx context.Context, line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", fmt.Errorf("empty command\n%s", helpText)
	}

	switch strings.ToLower(fields[0]) {
	case "help":
		return helpText, nil
	case "assign":
		return i.handleAssign(ctx, fields[1:])
	case "query":
		return i.handleQuery(ctx, fields[1:])
	case "update":
		return i.handleUpdate(ctx, fields[1:])
	}
	return "", fmt.Errorf("unknown command %q\n%s", fields[0], helpText)
}

func (i *Interpreter) handleAssign(ctx context.Context, args []string) (string, error) {
	if len(args) != 3 {
		return "", fmt.Errorf("usage: assign <pilot_id> <drone_id> <mission_id>")
	}

	resp, err := i.dispatch.Assign(ctx, primary.AssignRequest{
		PilotID: args[0], DroneID: args[1], MissionID: args[2],
	})
	if err != nil {
		return "", err
	}
	if resp.Assigned {
		return fmt.Sprintf("Assigned %s + %s to %s (cost %d)", args[0], args[1], args[2], resp.Cost), nil
	}
	return fmt.Sprintf("Cannot assign: %s", strings.Join(resp.Violations, "; ")), nil
}

func (i *Interpreter) handleQuery(ctx context.Context, args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("usage: query pilots|drones [key=value ...]")
	}

	filters, err := parseFilters(args[1:])
	if err != nil {
		return "", err
	}

	switch strings.ToLower(args[0]) {
	case "pilots":
		pilots, err := i.query.QueryPilots(ctx, primary.PilotFilters{
			Skill:         filters["skill"],
			Location:      filters["location"],
			Certification: filters["cert"],
		})
		if err != nil {
			return "", err
		}
		if len(pilots) == 0 {
			return "No available pilots match.", nil
		}
		lines := make([]string, len(pilots))
		for n, p := range pilots {
			lines[n] = fmt.Sprintf("%s  %s  %s  rate %d", p.ID, p.Name, p.Location, p.DailyRate)
		}
		return strings.Join(lines, "\n"), nil

	case "drones":
		drones, err := i.query.QueryDrones(ctx, primary.DroneFilters{
			Capability: filters["capability"],
			Location:   filters["location"],
		})
		if err != nil {
			return "", err
		}
		if len(drones) == 0 {
			return "No available drones match.", nil
		}
		lines := make([]string, len(drones))
		for n, d := range drones {
			lines[n] = fmt.Sprintf("%s  %s  %s", d.ID, d.Model, d.Location)
		}
		return strings.Join(lines, "\n"), nil
	}
	return "", fmt.Errorf("unknown query target %q (want pilots or drones)", args[0])
}

func (i *Interpreter) handleUpdate(ctx context.Context, args []string) (string, error) {
	if len(args) != 2 {
		return "", fmt.Errorf("usage: update <pilot_id> <Available|Assigned|OnLeave>")
	}
	if _, err := models.ParsePilotStatus(args[1]); err != nil {
		return "", err
	}

	resp, err := i.roster.UpdatePilotStatus(ctx, primary.UpdateStatusRequest{
		PilotID: args[0], Status: args[1],
	})
	if err != nil {
		return "", err
	}
	if resp.ClearedAssignment != "" {
		return fmt.Sprintf("%s is now %s (released from %s)", resp.PilotID, resp.Status, resp.ClearedAssignment), nil
	}
	return fmt.Sprintf("%s is now %s", resp.PilotID, resp.Status), nil
}

// parseFilters reads key=value arguments. Unknown keys are grammar errors
// so typos do not silently drop a filter.
func parseFilters(args []string) (map[string]string, error) {
	filters := make(map[string]string)
	for _, a := range args {
		key, value, ok := strings.Cut(a, "=")
		if !ok || value == "" {
			return nil, fmt.Errorf("bad filter %q (want key=value)", a)
		}
		switch key {
		case "skill", "location", "cert", "capability":
			filters[key] = value
		default:
			return nil, fmt.Errorf("unknown filter %q", key)
		}
	}
	return filters, nil
}
