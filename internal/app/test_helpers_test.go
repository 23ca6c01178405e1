package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/example/skylark/internal/adapters/memory"
	"github.com/example/skylark/internal/models"
	"github.com/example/skylark/internal/ports/secondary"
)

// refDate is "today" for every service test: the P001/PRJ001 scenario
// assumes dispatch happens the day the mission starts.
var refDate = mustDate("2026-02-06")

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func fixedClock() secondary.Clock {
	return secondary.ClockFunc(func() time.Time { return refDate })
}

// seedCatalog loads the sample field-ops dataset used across service
// tests: two sites (Bangalore, Mumbai), one assigned pilot, one drone in
// maintenance.
func seedCatalog(t *testing.T) *memory.Catalog {
	t.Helper()
	c := memory.NewCatalog()
	ctx := context.Background()

	require.NoError(t, c.ReplacePilots(ctx, []models.Pilot{
		{ID: "P001", Name: "Arjun Rao", Skills: models.ParseTokenSet("Mapping, Survey"),
			Certifications: models.ParseTokenSet("DGCA"), Location: "Bangalore",
			Status: models.PilotAvailable, AvailableFrom: mustDate("2026-02-05"), DailyRate: 1500},
		{ID: "P002", Name: "Meera Shah", Skills: models.ParseTokenSet("Inspection"),
			Certifications: models.ParseTokenSet("DGCA"), Location: "Mumbai",
			Status: models.PilotAssigned, CurrentAssignment: "PRJ009", DailyRate: 1800},
		{ID: "P003", Name: "Dev Kumar", Skills: models.ParseTokenSet("Inspection, Survey"),
			Certifications: models.ParseTokenSet("DGCA, Night-Ops"), Location: "Mumbai",
			Status: models.PilotAvailable, AvailableFrom: mustDate("2026-01-01"), DailyRate: 2000},
	}))
	require.NoError(t, c.ReplaceDrones(ctx, []models.Drone{
		{ID: "D001", Model: "AgriHawk X2", Capabilities: models.ParseTokenSet("LiDAR, RGB"),
			Status: models.DroneAvailable, Location: "Bangalore", WeatherResistance: "Rated for rain"},
		{ID: "D002", Model: "SkyScout Mini", Capabilities: models.ParseTokenSet("RGB"),
			Status: models.DroneMaintenance, Location: "Mumbai", WeatherResistance: "Clear-sky-only"},
	}))
	require.NoError(t, c.ReplaceMissions(ctx, []models.Mission{
		{ID: "PRJ001", Client: "AgroSurvey Ltd", Location: "Bangalore",
			RequiredSkills: models.ParseTokenSet("Mapping"), RequiredCerts: models.ParseTokenSet("DGCA"),
			StartDate: mustDate("2026-02-06"), EndDate: mustDate("2026-02-08"),
			Budget: 10500, WeatherForecast: "Rainy"},
		{ID: "PRJ002", Client: "MetroGrid", Location: "Mumbai",
			RequiredSkills: models.ParseTokenSet("Inspection"), RequiredCerts: models.ParseTokenSet("DGCA"),
			StartDate: mustDate("2026-02-10"), EndDate: mustDate("2026-02-11"),
			Budget: 3000, WeatherForecast: "Sunny"},
	}))
	return c
}

// stubDecisionLog collects entries in memory for assertions.
type stubDecisionLog struct {
	mu      sync.Mutex
	entries []secondary.DecisionEntry
}

func (l *stubDecisionLog) Record(_ context.Context, entry secondary.DecisionEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
	return nil
}

func (l *stubDecisionLog) Recent(_ context.Context, limit int) ([]secondary.DecisionEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := len(l.entries)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]secondary.DecisionEntry, 0, n)
	for i := len(l.entries) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, l.entries[i])
	}
	return out, nil
}
