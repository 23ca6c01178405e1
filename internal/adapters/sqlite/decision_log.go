// Package sqlite contains the SQLite implementation of the decision log
// port. The catalog itself stays in memory; only the audit trail of
// dispatch decisions is persisted.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/skylark/internal/ports/secondary"
)

const schema = `
CREATE TABLE IF NOT EXISTS dispatch_decisions (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	pilot_id    TEXT NOT NULL,
	drone_id    TEXT NOT NULL,
	mission_id  TEXT NOT NULL,
	assigned    INTEGER NOT NULL,
	violations  TEXT NOT NULL DEFAULT '',
	decided_at  TEXT NOT NULL
);
`

// violationSeparator joins violation reasons into one column. Reasons are
// fixed strings that never contain it.
const violationSeparator = "; "

// DecisionLog implements secondary.DecisionLog over a SQLite file.
type DecisionLog struct {
	db *sql.DB
}

// OpenDecisionLog opens (creating if needed) the decision log at path.
// Use ":memory:" for tests.
func OpenDecisionLog(path string) (*DecisionLog, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open decision log: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize decision log schema: %w", err)
	}
	return &DecisionLog{db: db}, nil
}

// Close releases the database handle.
func (l *DecisionLog) Close() error {
	return l.db.Close()
}

// Record appends one decision entry.
func (l *DecisionLog) Record(ctx context.Context, entry secondary.DecisionEntry) error {
	assigned := 0
	if entry.Assigned {
		assigned = 1
	}
	_, err := l.db.ExecContext(ctx,
		"INSERT INTO dispatch_decisions (pilot_id, drone_id, mission_id, assigned, violations, decided_at) VALUES (?, ?, ?, ?, ?, ?)",
		entry.PilotID, entry.DroneID, entry.MissionID, assigned,
		strings.Join(entry.Violations, violationSeparator),
		entry.DecidedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to record decision: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (l *DecisionLog) Recent(ctx context.Context, limit int) ([]secondary.DecisionEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := l.db.QueryContext(ctx,
		"SELECT id, pilot_id, drone_id, mission_id, assigned, violations, decided_at FROM dispatch_decisions ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query decisions: %w", err)
	}
	defer rows.Close()

	var entries []secondary.DecisionEntry
	for rows.Next() {
		var e secondary.DecisionEntry
		var assigned int
		var violations, decidedAt string
		if err := rows.Scan(&e.ID, &e.PilotID, &e.DroneID, &e.MissionID, &assigned, &violations, &decidedAt); err != nil {
			return nil, fmt.Errorf("failed to scan decision: %w", err)
		}
		e.Assigned = assigned != 0
		if violations != "" {
			e.Violations = strings.Split(violations, violationSeparator)
		}
		if ts, err := time.Parse(time.RFC3339, decidedAt); err == nil {
			e.DecidedAt = ts
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
