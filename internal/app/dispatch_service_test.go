package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/skylark/internal/models"
	"github.com/example/skylark/internal/ports/primary"
	"github.com/example/skylark/internal/ports/secondary"
)

func TestAssignSampleScenario(t *testing.T) {
	catalog := seedCatalog(t)
	decisions := &stubDecisionLog{}
	svc := NewDispatchService(catalog, fixedClock(), decisions)
	ctx := context.Background()

	// P001 (Mapping, Bangalore, rate 1500) + D001 (rain-rated, Bangalore)
	// + PRJ001 (Mapping/DGCA, Bangalore, 3 days, budget 10500, Rainy).
	resp, err := svc.Assign(ctx, primary.AssignRequest{
		PilotID: "P001", DroneID: "D001", MissionID: "PRJ001",
	})
	require.NoError(t, err)
	assert.True(t, resp.Assigned)
	assert.Empty(t, resp.Violations)
	assert.Equal(t, int64(4500), resp.Cost)

	p, err := catalog.GetPilot(ctx, "P001")
	require.NoError(t, err)
	assert.Equal(t, models.PilotAssigned, p.Status)
	assert.Equal(t, "PRJ001", p.CurrentAssignment)

	d, err := catalog.GetDrone(ctx, "D001")
	require.NoError(t, err)
	assert.Equal(t, models.DroneAssigned, d.Status)
	assert.Equal(t, "PRJ001", d.CurrentAssignment)

	m, err := catalog.GetMission(ctx, "PRJ001")
	require.NoError(t, err)
	assert.Equal(t, "AgroSurvey Ltd", m.Client)

	entries, err := decisions.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Assigned)
}

func TestAssignCollectsViolationsAndLeavesCatalogUntouched(t *testing.T) {
	catalog := seedCatalog(t)
	svc := NewDispatchService(catalog, fixedClock(), nil)
	ctx := context.Background()

	before, err := catalog.ScanPilots(ctx, nil)
	require.NoError(t, err)

	// P003 is in Mumbai with Inspection skills; D002 is in maintenance.
	resp, err := svc.Assign(ctx, primary.AssignRequest{
		PilotID: "P003", DroneID: "D002", MissionID: "PRJ001",
	})
	require.NoError(t, err)
	assert.False(t, resp.Assigned)
	assert.Equal(t, []string{
		"Skill mismatch",
		"Pilot location mismatch",
		"Drone location mismatch",
		"Drone not available",
		"Weather incompatible",
	}, resp.Violations)

	after, err := catalog.ScanPilots(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, before, after, "rejected assignment must not mutate the catalog")

	d, err := catalog.GetDrone(ctx, "D002")
	require.NoError(t, err)
	assert.Equal(t, models.DroneMaintenance, d.Status)
	assert.Empty(t, d.CurrentAssignment)
}

func TestAssignPilotPreCheckSkipsEvaluator(t *testing.T) {
	catalog := seedCatalog(t)
	svc := NewDispatchService(catalog, fixedClock(), nil)

	// P002 is Assigned: the pre-check fails and the evaluator's own
	// violations (location, skills) must not appear.
	resp, err := svc.Assign(context.Background(), primary.AssignRequest{
		PilotID: "P002", DroneID: "D001", MissionID: "PRJ001",
	})
	require.NoError(t, err)
	assert.False(t, resp.Assigned)
	assert.Equal(t, []string{"Pilot not available"}, resp.Violations)
}

func TestAssignPilotNotYetAvailable(t *testing.T) {
	catalog := seedCatalog(t)
	ctx := context.Background()

	require.NoError(t, catalog.ReplacePilots(ctx, []models.Pilot{
		{ID: "P001", Skills: models.ParseTokenSet("Mapping"),
			Certifications: models.ParseTokenSet("DGCA"), Location: "Bangalore",
			Status: models.PilotAvailable, AvailableFrom: mustDate("2026-03-01"), DailyRate: 1500},
	}))

	svc := NewDispatchService(catalog, fixedClock(), nil)
	resp, err := svc.Assign(ctx, primary.AssignRequest{
		PilotID: "P001", DroneID: "D001", MissionID: "PRJ001",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Pilot not available"}, resp.Violations)
}

func TestAssignUnknownIdentifiers(t *testing.T) {
	catalog := seedCatalog(t)
	svc := NewDispatchService(catalog, fixedClock(), nil)
	ctx := context.Background()

	tests := []struct {
		name string
		req  primary.AssignRequest
	}{
		{name: "unknown pilot", req: primary.AssignRequest{PilotID: "P999", DroneID: "D001", MissionID: "PRJ001"}},
		{name: "unknown drone", req: primary.AssignRequest{PilotID: "P001", DroneID: "D999", MissionID: "PRJ001"}},
		{name: "unknown mission", req: primary.AssignRequest{PilotID: "P001", DroneID: "D001", MissionID: "PRJ999"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Assign(ctx, tt.req)
			assert.ErrorIs(t, err, secondary.ErrNotFound)
		})
	}
}

func TestAssignRejectedAttemptIsAudited(t *testing.T) {
	catalog := seedCatalog(t)
	decisions := &stubDecisionLog{}
	svc := NewDispatchService(catalog, fixedClock(), decisions)
	ctx := context.Background()

	_, err := svc.Assign(ctx, primary.AssignRequest{
		PilotID: "P002", DroneID: "D001", MissionID: "PRJ001",
	})
	require.NoError(t, err)

	entries, err := decisions.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.False(t, entries[0].Assigned)
	assert.Equal(t, []string{"Pilot not available"}, entries[0].Violations)
	assert.Equal(t, refDate, entries[0].DecidedAt)
}
