package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/skylark/internal/models"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return ts
}

func seedCatalog(t *testing.T) *Catalog {
	t.Helper()
	c := NewCatalog()
	ctx := context.Background()

	require.NoError(t, c.ReplacePilots(ctx, []models.Pilot{
		{ID: "P001", Name: "Arjun Rao", Skills: models.ParseTokenSet("Mapping, Survey"),
			Location: "Bangalore", Status: models.PilotAvailable,
			AvailableFrom: date(t, "2026-02-05"), DailyRate: 1500},
		{ID: "P002", Name: "Meera Shah", Skills: models.ParseTokenSet("Inspection"),
			Location: "Mumbai", Status: models.PilotAssigned, CurrentAssignment: "PRJ009"},
		{ID: "P003", Name: "Dev Kumar", Skills: models.ParseTokenSet("Inspection"),
			Location: "Mumbai", Status: models.PilotAvailable,
			AvailableFrom: date(t, "2026-01-01"), DailyRate: 2000},
	}))
	require.NoError(t, c.ReplaceDrones(ctx, []models.Drone{
		{ID: "D001", Model: "AgriHawk X2", Capabilities: models.ParseTokenSet("LiDAR, RGB"),
			Status: models.DroneAvailable, Location: "Bangalore", WeatherResistance: "Rated for rain"},
	}))
	require.NoError(t, c.ReplaceMissions(ctx, []models.Mission{
		{ID: "PRJ001", Client: "AgroSurvey Ltd", Location: "Bangalore",
			RequiredSkills: models.ParseTokenSet("Mapping"), RequiredCerts: models.ParseTokenSet("DGCA"),
			StartDate: date(t, "2026-02-06"), EndDate: date(t, "2026-02-08"),
			Budget: 10500, WeatherForecast: "Rainy"},
	}))
	return c
}

func TestGetPilot(t *testing.T) {
	c := seedCatalog(t)
	ctx := context.Background()

	p, err := c.GetPilot(ctx, "P001")
	require.NoError(t, err)
	assert.Equal(t, "Arjun Rao", p.Name)

	_, err = c.GetPilot(ctx, "P999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetReturnsCopies(t *testing.T) {
	c := seedCatalog(t)
	ctx := context.Background()

	p, err := c.GetPilot(ctx, "P001")
	require.NoError(t, err)
	p.Skills[0] = "Tampered"
	p.Status = models.PilotOnLeave

	again, err := c.GetPilot(ctx, "P001")
	require.NoError(t, err)
	assert.Equal(t, "Mapping", again.Skills[0])
	assert.Equal(t, models.PilotAvailable, again.Status)
}

func TestScanPreservesLoadOrder(t *testing.T) {
	c := seedCatalog(t)

	pilots, err := c.ScanPilots(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, pilots, 3)
	assert.Equal(t, "P001", pilots[0].ID)
	assert.Equal(t, "P002", pilots[1].ID)
	assert.Equal(t, "P003", pilots[2].ID)
}

func TestScanWithPredicate(t *testing.T) {
	c := seedCatalog(t)

	available, err := c.ScanPilots(context.Background(), func(p models.Pilot) bool {
		return p.Status == models.PilotAvailable
	})
	require.NoError(t, err)
	require.Len(t, available, 2)
	assert.Equal(t, "P001", available[0].ID)
	assert.Equal(t, "P003", available[1].ID)
}

func TestReplaceRejectsDuplicates(t *testing.T) {
	c := NewCatalog()
	err := c.ReplacePilots(context.Background(), []models.Pilot{
		{ID: "P001"}, {ID: "P001"},
	})
	assert.Error(t, err)
}

func TestReplaceSwapsWholeTable(t *testing.T) {
	c := seedCatalog(t)
	ctx := context.Background()

	require.NoError(t, c.ReplacePilots(ctx, []models.Pilot{
		{ID: "P010", Status: models.PilotAvailable},
	}))

	_, err := c.GetPilot(ctx, "P001")
	assert.ErrorIs(t, err, ErrNotFound)

	pilots, err := c.ScanPilots(ctx, nil)
	require.NoError(t, err)
	require.Len(t, pilots, 1)
	assert.Equal(t, "P010", pilots[0].ID)
}

func TestApplyAssignment(t *testing.T) {
	c := seedCatalog(t)
	ctx := context.Background()

	require.NoError(t, c.ApplyAssignment(ctx, "P001", "D001", "PRJ001"))

	p, err := c.GetPilot(ctx, "P001")
	require.NoError(t, err)
	assert.Equal(t, models.PilotAssigned, p.Status)
	assert.Equal(t, "PRJ001", p.CurrentAssignment)

	d, err := c.GetDrone(ctx, "D001")
	require.NoError(t, err)
	assert.Equal(t, models.DroneAssigned, d.Status)
	assert.Equal(t, "PRJ001", d.CurrentAssignment)

	// Mission record unchanged.
	m, err := c.GetMission(ctx, "PRJ001")
	require.NoError(t, err)
	assert.Equal(t, "AgroSurvey Ltd", m.Client)
}

func TestApplyAssignmentAllOrNothing(t *testing.T) {
	c := seedCatalog(t)
	ctx := context.Background()

	// Unknown drone: the pilot must not be half-assigned.
	err := c.ApplyAssignment(ctx, "P001", "D999", "PRJ001")
	require.Error(t, err)

	p, err := c.GetPilot(ctx, "P001")
	require.NoError(t, err)
	assert.Equal(t, models.PilotAvailable, p.Status)
	assert.Empty(t, p.CurrentAssignment)
}

func TestApplyAssignmentRacingClaims(t *testing.T) {
	c := seedCatalog(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = c.ApplyAssignment(ctx, "P001", "D001", "PRJ001")
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one racing assignment may win")
}

func TestOverridePilotStatus(t *testing.T) {
	c := seedCatalog(t)
	ctx := context.Background()

	prior, err := c.OverridePilotStatus(ctx, "P002", models.PilotAvailable, true)
	require.NoError(t, err)
	assert.Equal(t, "PRJ009", prior)

	p, err := c.GetPilot(ctx, "P002")
	require.NoError(t, err)
	assert.Equal(t, models.PilotAvailable, p.Status)
	assert.Empty(t, p.CurrentAssignment)

	_, err = c.OverridePilotStatus(ctx, "P999", models.PilotOnLeave, false)
	assert.ErrorIs(t, err, ErrNotFound)
}
