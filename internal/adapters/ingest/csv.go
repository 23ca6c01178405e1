// Package ingest parses sheet exports (CSV) into catalog records. This is
// the ingestion collaborator: it owns all source-format quirks - header
// naming, comma-separated token fields, date and currency parsing - so the
// core only ever sees normalized records.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/example/skylark/internal/models"
)

const dateLayout = "2006-01-02"

// row gives header-keyed access to one CSV record. Header matching is
// case-insensitive and ignores surrounding whitespace; sheet exports are
// not consistent about either.
type row struct {
	index  map[string]int
	fields []string
}

func (r row) get(name string) string {
	i, ok := r.index[strings.ToLower(name)]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return strings.TrimSpace(r.fields[i])
}

func readRows(r io.Reader) ([]row, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}

	var rows []row
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
		rows = append(rows, row{index: index, fields: fields})
	}
	return rows, nil
}

func parseDate(s, field string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q (want YYYY-MM-DD)", field, s)
	}
	return t, nil
}

func parseAmount(s, field string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q (want a whole amount)", field, s)
	}
	return n, nil
}

// ReadPilots parses a pilot sheet export. Every record is validated; one
// bad row rejects the whole sheet.
func ReadPilots(r io.Reader) ([]models.Pilot, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}

	pilots := make([]models.Pilot, 0, len(rows))
	for i, row := range rows {
		status, err := models.ParsePilotStatus(orDefault(row.get("Status"), string(models.PilotAvailable)))
		if err != nil {
			return nil, fmt.Errorf("pilot row %d: %w", i+2, err)
		}
		availableFrom, err := parseDate(row.get("Available From"), "available-from date")
		if err != nil {
			return nil, fmt.Errorf("pilot row %d: %w", i+2, err)
		}
		rate, err := parseAmount(row.get("Daily Rate"), "daily rate")
		if err != nil {
			return nil, fmt.Errorf("pilot row %d: %w", i+2, err)
		}

		p := models.Pilot{
			ID:                row.get("ID"),
			Name:              row.get("Name"),
			Skills:            models.ParseTokenSet(row.get("Skills")),
			Certifications:    models.ParseTokenSet(row.get("Certifications")),
			Location:          row.get("Location"),
			Status:            status,
			CurrentAssignment: row.get("Current Assignment"),
			AvailableFrom:     availableFrom,
			DailyRate:         rate,
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("pilot row %d: %w", i+2, err)
		}
		pilots = append(pilots, p)
	}
	return pilots, nil
}

// ReadDrones parses a drone fleet sheet export.
func ReadDrones(r io.Reader) ([]models.Drone, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}

	drones := make([]models.Drone, 0, len(rows))
	for i, row := range rows {
		status, err := models.ParseDroneStatus(orDefault(row.get("Status"), string(models.DroneAvailable)))
		if err != nil {
			return nil, fmt.Errorf("drone row %d: %w", i+2, err)
		}
		maintenanceDue, err := parseDate(row.get("Maintenance Due"), "maintenance-due date")
		if err != nil {
			return nil, fmt.Errorf("drone row %d: %w", i+2, err)
		}

		d := models.Drone{
			ID:                row.get("ID"),
			Model:             row.get("Model"),
			Capabilities:      models.ParseTokenSet(row.get("Capabilities")),
			Status:            status,
			Location:          row.get("Location"),
			CurrentAssignment: row.get("Current Assignment"),
			MaintenanceDue:    maintenanceDue,
			WeatherResistance: row.get("Weather Resistance"),
		}
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("drone row %d: %w", i+2, err)
		}
		drones = append(drones, d)
	}
	return drones, nil
}

// ReadMissions parses a mission sheet export.
func ReadMissions(r io.Reader) ([]models.Mission, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}

	missions := make([]models.Mission, 0, len(rows))
	for i, row := range rows {
		startDate, err := parseDate(row.get("Start Date"), "start date")
		if err != nil {
			return nil, fmt.Errorf("mission row %d: %w", i+2, err)
		}
		endDate, err := parseDate(row.get("End Date"), "end date")
		if err != nil {
			return nil, fmt.Errorf("mission row %d: %w", i+2, err)
		}
		budget, err := parseAmount(row.get("Budget"), "budget")
		if err != nil {
			return nil, fmt.Errorf("mission row %d: %w", i+2, err)
		}
		priority, err := models.ParseMissionPriority(row.get("Priority"))
		if err != nil {
			return nil, fmt.Errorf("mission row %d: %w", i+2, err)
		}

		m := models.Mission{
			ID:              row.get("ID"),
			Client:          row.get("Client"),
			Location:        row.get("Location"),
			RequiredSkills:  models.ParseTokenSet(row.get("Required Skills")),
			RequiredCerts:   models.ParseTokenSet(row.get("Required Certifications")),
			StartDate:       startDate,
			EndDate:         endDate,
			Priority:        priority,
			Budget:          budget,
			WeatherForecast: row.get("Weather Forecast"),
		}
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("mission row %d: %w", i+2, err)
		}
		missions = append(missions, m)
	}
	return missions, nil
}

// ReadPilotsFile parses a pilot sheet from disk.
func ReadPilotsFile(path string) ([]models.Pilot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pilot sheet: %w", err)
	}
	defer f.Close()
	pilots, err := ReadPilots(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pilots, nil
}

// ReadDronesFile parses a drone sheet from disk.
func ReadDronesFile(path string) ([]models.Drone, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open drone sheet: %w", err)
	}
	defer f.Close()
	drones, err := ReadDrones(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return drones, nil
}

// ReadMissionsFile parses a mission sheet from disk.
func ReadMissionsFile(path string) ([]models.Mission, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open mission sheet: %w", err)
	}
	defer f.Close()
	missions, err := ReadMissions(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return missions, nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
