// Package app wires the daemon together: configuration, model runner,
// sensor pod, storage sinks, REST controller, and the forecaster loop.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/microwx/microwx/internal/controllers/restserver"
	"github.com/microwx/microwx/internal/forecaster"
	"github.com/microwx/microwx/internal/inference/modelrunnerclient"
	"github.com/microwx/microwx/internal/log"
	"github.com/microwx/microwx/internal/managers"
	"github.com/microwx/microwx/internal/sensors/serialbus"
	"github.com/microwx/microwx/pkg/config"
	"go.uber.org/zap"
)

// App represents the main application
type App struct {
	configProvider config.ConfigProvider
	logger         *zap.SugaredLogger
}

// New creates a new application instance
func New(configProvider config.ConfigProvider, logger *zap.SugaredLogger) *App {
	return &App{
		configProvider: configProvider,
		logger:         logger,
	}
}

// Run starts the application and blocks until shutdown.  Any failure
// during initialization is returned immediately; nothing starts in a
// degraded state.
func (a *App) Run(ctx context.Context) error {
	var wg sync.WaitGroup

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cfg, err := a.configProvider.LoadConfig()
	if err != nil {
		return fmt.Errorf("could not load configuration: %w", err)
	}

	// The model runner handshake is fatal on mismatch: a model with the
	// wrong tensor geometry must never serve a forecast.
	engine, err := modelrunnerclient.New(ctx, cfg.Model.RunnerAddr)
	if err != nil {
		return fmt.Errorf("could not connect to model runner: %w", err)
	}
	defer engine.Close()

	interval, err := cfg.Sensor.Interval()
	if err != nil {
		return err
	}

	sensor := serialbus.NewPod(ctx, &wg, cfg.Sensor, interval, a.logger)
	if err := sensor.Start(); err != nil {
		return fmt.Errorf("could not start sensor pod: %w", err)
	}

	storageManager, err := managers.NewStorageManager(ctx, &wg, cfg)
	if err != nil {
		return err
	}

	if cfg.RESTServer != nil {
		rest, err := restserver.NewController(ctx, &wg, *cfg.RESTServer, a.logger)
		if err != nil {
			return err
		}
		storageManager.AddSink(ctx, &wg, rest)
		if err := rest.StartController(); err != nil {
			return err
		}
	}

	fc, err := forecaster.New(ctx, &wg, cfg, sensor, engine, storageManager.EventDistributor, a.logger)
	if err != nil {
		return err
	}
	fc.Start()

	log.Info("Application started successfully")

	// Set up signal handling
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	// Wait for shutdown signal
	select {
	case <-sigs:
		log.Info("shutdown signal received, initiating graceful shutdown...")
	case <-ctx.Done():
		log.Info("context cancelled, shutting down...")
	}

	// Cancel context to signal all goroutines to stop
	cancel()

	// Wait for all workers to terminate
	log.Info("waiting for all workers to terminate...")
	wg.Wait()
	log.Info("shutdown complete")

	return nil
}
