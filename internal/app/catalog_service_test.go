package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/skylark/internal/adapters/memory"
	"github.com/example/skylark/internal/models"
	"github.com/example/skylark/internal/ports/primary"
)

func TestLoadReplacesTables(t *testing.T) {
	catalog := memory.NewCatalog()
	svc := NewCatalogService(catalog)
	ctx := context.Background()

	resp, err := svc.Load(ctx, primary.LoadRequest{
		Pilots: []models.Pilot{
			{ID: "P001", Status: models.PilotAvailable, DailyRate: 1500},
		},
		Missions: []models.Mission{
			{ID: "PRJ001", StartDate: mustDate("2026-02-06"), EndDate: mustDate("2026-02-08"), Budget: 10500},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Pilots)
	assert.Equal(t, 0, resp.Drones)
	assert.Equal(t, 1, resp.Missions)

	_, err = catalog.GetPilot(ctx, "P001")
	assert.NoError(t, err)
}

func TestLoadRejectsInvalidMission(t *testing.T) {
	catalog := memory.NewCatalog()
	svc := NewCatalogService(catalog)
	ctx := context.Background()

	_, err := svc.Load(ctx, primary.LoadRequest{
		Missions: []models.Mission{
			{ID: "PRJ001", StartDate: mustDate("2026-02-08"), EndDate: mustDate("2026-02-06"), Budget: 100},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "end date")

	// Nothing was loaded.
	missions, err := catalog.ScanMissions(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, missions)
}

func TestLoadRejectsWholeBatchOnOneBadRecord(t *testing.T) {
	catalog := memory.NewCatalog()
	svc := NewCatalogService(catalog)
	ctx := context.Background()

	_, err := svc.Load(ctx, primary.LoadRequest{
		Pilots: []models.Pilot{
			{ID: "P001", Status: models.PilotAvailable},
			{ID: "P002", Status: "Bogus"},
		},
	})
	require.Error(t, err)

	pilots, err := catalog.ScanPilots(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, pilots, "a bad record must reject the whole load")
}
