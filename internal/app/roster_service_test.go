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

func TestUpdatePilotStatusToAvailableClearsAssignment(t *testing.T) {
	catalog := seedCatalog(t)
	svc := NewRosterService(catalog)
	ctx := context.Background()

	resp, err := svc.UpdatePilotStatus(ctx, primary.UpdateStatusRequest{
		PilotID: "P002", Status: "Available",
	})
	require.NoError(t, err)
	assert.Equal(t, "Available", resp.Status)
	assert.Equal(t, "PRJ009", resp.ClearedAssignment)

	p, err := catalog.GetPilot(ctx, "P002")
	require.NoError(t, err)
	assert.Equal(t, models.PilotAvailable, p.Status)
	assert.Empty(t, p.CurrentAssignment)
}

func TestUpdatePilotStatusToOnLeaveKeepsAssignment(t *testing.T) {
	catalog := seedCatalog(t)
	svc := NewRosterService(catalog)
	ctx := context.Background()

	resp, err := svc.UpdatePilotStatus(ctx, primary.UpdateStatusRequest{
		PilotID: "P002", Status: "OnLeave",
	})
	require.NoError(t, err)
	assert.Empty(t, resp.ClearedAssignment)

	// The override is one-sided on purpose: the pilot keeps the mission
	// back-reference, and the drone side is never touched.
	p, err := catalog.GetPilot(ctx, "P002")
	require.NoError(t, err)
	assert.Equal(t, models.PilotOnLeave, p.Status)
	assert.Equal(t, "PRJ009", p.CurrentAssignment)
}

func TestUpdatePilotStatusRejectsUnknownStatus(t *testing.T) {
	svc := NewRosterService(seedCatalog(t))

	_, err := svc.UpdatePilotStatus(context.Background(), primary.UpdateStatusRequest{
		PilotID: "P001", Status: "Retired",
	})
	assert.Error(t, err)
}

func TestUpdatePilotStatusUnknownPilot(t *testing.T) {
	svc := NewRosterService(seedCatalog(t))

	_, err := svc.UpdatePilotStatus(context.Background(), primary.UpdateStatusRequest{
		PilotID: "P999", Status: "Available",
	})
	assert.ErrorIs(t, err, secondary.ErrNotFound)
}
