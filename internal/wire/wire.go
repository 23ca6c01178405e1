// Package wire provides dependency injection for the skylark application.
// It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/example/skylark/internal/adapters/chat"
	"github.com/example/skylark/internal/adapters/ingest"
	"github.com/example/skylark/internal/adapters/memory"
	"github.com/example/skylark/internal/app"
	"github.com/example/skylark/internal/config"
	"github.com/example/skylark/internal/ports/primary"
	"github.com/example/skylark/internal/ports/secondary"

	sqliteadapter "github.com/example/skylark/internal/adapters/sqlite"
)

var (
	cfg             *config.Config
	catalog         *memory.Catalog
	decisionLog     secondary.DecisionLog
	dispatchService primary.DispatchService
	queryService    primary.QueryService
	rosterService   primary.RosterService
	catalogService  primary.CatalogService
	once            sync.Once
)

// Config returns the loaded configuration.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// DispatchService returns the singleton DispatchService instance.
func DispatchService() primary.DispatchService {
	once.Do(initServices)
	return dispatchService
}

// QueryService returns the singleton QueryService instance.
func QueryService() primary.QueryService {
	once.Do(initServices)
	return queryService
}

// RosterService returns the singleton RosterService instance.
func RosterService() primary.RosterService {
	once.Do(initServices)
	return rosterService
}

// CatalogService returns the singleton CatalogService instance.
func CatalogService() primary.CatalogService {
	once.Do(initServices)
	return catalogService
}

// DecisionLog returns the audit trail, or nil when none is configured.
func DecisionLog() secondary.DecisionLog {
	once.Do(initServices)
	return decisionLog
}

// Interpreter returns a new chat command interpreter.
// Each call creates a new interpreter (interpreters are stateless).
func Interpreter() *chat.Interpreter {
	once.Do(initServices)
	return chat.NewInterpreter(dispatchService, queryService, rosterService)
}

// LoadCatalog ingests the sheet exports named in the configuration. The
// in-memory catalog starts empty on every process start, so commands that
// touch resources call this first.
func LoadCatalog(ctx context.Context) (*primary.LoadResponse, error) {
	once.Do(initServices)

	req := primary.LoadRequest{}
	if cfg.Data.Pilots != "" {
		pilots, err := ingest.ReadPilotsFile(cfg.Data.Pilots)
		if err != nil {
			return nil, err
		}
		req.Pilots = pilots
	}
	if cfg.Data.Drones != "" {
		drones, err := ingest.ReadDronesFile(cfg.Data.Drones)
		if err != nil {
			return nil, err
		}
		req.Drones = drones
	}
	if cfg.Data.Missions != "" {
		missions, err := ingest.ReadMissionsFile(cfg.Data.Missions)
		if err != nil {
			return nil, err
		}
		req.Missions = missions
	}
	if req.Pilots == nil && req.Drones == nil && req.Missions == nil {
		return nil, fmt.Errorf("no data sources configured (set data.pilots, data.drones, data.missions)")
	}

	return catalogService.Load(ctx, req)
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	catalog = memory.NewCatalog()
	clock := secondary.ClockFunc(time.Now)

	if cfg.DecisionLogPath != "" {
		dl, err := sqliteadapter.OpenDecisionLog(cfg.DecisionLogPath)
		if err != nil {
			log.Fatalf("failed to open decision log: %v", err)
		}
		decisionLog = dl
	}

	dispatchService = app.NewDispatchService(catalog, clock, decisionLog)
	queryService = app.NewQueryService(catalog, clock)
	rosterService = app.NewRosterService(catalog)
	catalogService = app.NewCatalogService(catalog)
}
