// Package managers wires configured reporting backends to the forecast
// event distributor.
package managers

import (
	"context"
	"fmt"
	"sync"

	"github.com/microwx/microwx/internal/storage"
	"github.com/microwx/microwx/internal/storage/timescaledb"
	"github.com/microwx/microwx/internal/storage/webhook"
	"github.com/microwx/microwx/internal/types"
	"github.com/microwx/microwx/pkg/config"
)

// StorageManager holds our active reporting backends
type StorageManager struct {
	Engines          []StorageEngine
	EventDistributor chan types.ForecastEvent
}

// StorageEngine holds a backend engine's interface as well as a
// channel for passing forecast events to the engine
type StorageEngine struct {
	Engine storage.StorageEngineInterface
	C      chan<- types.ForecastEvent
}

// NewStorageManager creates a StorageManager object, populated with all
// configured reporting backends
func NewStorageManager(ctx context.Context, wg *sync.WaitGroup, cfg *config.ConfigData) (*StorageManager, error) {
	s := StorageManager{}

	// Initialize our channel for passing forecast events to the
	// distributor
	s.EventDistributor = make(chan types.ForecastEvent, 20)

	// Start our distributor to fan received events out to the backends
	go s.startEventDistributor(ctx, wg)

	if cfg.Storage.TimescaleDB != nil && cfg.Storage.TimescaleDB.ConnectionString != "" {
		engine, err := timescaledb.New(ctx, cfg.Storage.TimescaleDB.ConnectionString)
		if err != nil {
			return &s, fmt.Errorf("could not add TimescaleDB reporting backend: %v", err)
		}
		s.AddSink(ctx, wg, engine)
	}

	if cfg.Storage.Webhook != nil {
		engine, err := webhook.New(*cfg.Storage.Webhook)
		if err != nil {
			return &s, fmt.Errorf("could not add webhook reporting backend: %v", err)
		}
		s.AddSink(ctx, wg, engine)
	}

	return &s, nil
}

// AddSink registers a reporting backend and starts its event loop
func (s *StorageManager) AddSink(ctx context.Context, wg *sync.WaitGroup, engine storage.StorageEngineInterface) {
	se := StorageEngine{Engine: engine}
	se.C = engine.StartStorageEngine(ctx, wg)
	s.Engines = append(s.Engines, se)
}

// startEventDistributor receives forecast events from the forecaster
// and fans them out to the various reporting backends
func (s *StorageManager) startEventDistributor(ctx context.Context, wg *sync.WaitGroup) {
	wg.Add(1)
	defer wg.Done()

	for {
		select {
		case ev := <-s.EventDistributor:
			for _, e := range s.Engines {
				e.C <- ev
			}
		case <-ctx.Done():
			return
		}
	}
}
