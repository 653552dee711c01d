// Package restserver serves the latest forecast and alert state over
// HTTP.  It consumes forecast events like any other reporting sink and
// keeps only the newest one; a freshly started server reports 404
// until the first successful cycle completes.
package restserver

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/microwx/microwx/internal/log"
	"github.com/microwx/microwx/internal/types"
	"github.com/microwx/microwx/pkg/config"
	"github.com/microwx/microwx/pkg/responseformat"
	"go.uber.org/zap"
)

// Controller represents the REST server controller
type Controller struct {
	ctx       context.Context
	wg        *sync.WaitGroup
	cfg       config.RESTServerData
	Server    http.Server
	logger    *zap.SugaredLogger
	formatter *responseformat.Formatter

	mu     sync.RWMutex
	latest *types.ForecastEvent
}

// NewController creates a new REST server controller
func NewController(ctx context.Context, wg *sync.WaitGroup, cfg config.RESTServerData, logger *zap.SugaredLogger) (*Controller, error) {
	if cfg.Port == 0 {
		return nil, fmt.Errorf("rest server requires a port")
	}

	return &Controller{
		ctx:       ctx,
		wg:        wg,
		cfg:       cfg,
		logger:    logger,
		formatter: responseformat.NewFormatter(),
	}, nil
}

// StartStorageEngine lets the controller consume forecast events from
// the reporting distributor
func (c *Controller) StartStorageEngine(ctx context.Context, wg *sync.WaitGroup) chan<- types.ForecastEvent {
	eventChan := make(chan types.ForecastEvent, 10)
	go c.processEvents(ctx, wg, eventChan)
	return eventChan
}

func (c *Controller) processEvents(ctx context.Context, wg *sync.WaitGroup, events <-chan types.ForecastEvent) {
	wg.Add(1)
	defer wg.Done()

	for {
		select {
		case ev := <-events:
			c.mu.Lock()
			c.latest = &ev
			c.mu.Unlock()
		case <-ctx.Done():
			return
		}
	}
}

// StartController starts the HTTP listener
func (c *Controller) StartController() error {
	router := c.Router()

	listenAddr := fmt.Sprintf("%v:%v", c.cfg.ListenAddr, c.cfg.Port)
	c.Server = http.Server{
		Addr:    listenAddr,
		Handler: log.HTTPRequestLogger(router),
	}

	log.Infof("Starting REST server on %v...", listenAddr)

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		if err := c.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			c.logger.Errorf("REST server error: %v", err)
		}
	}()

	go func() {
		<-c.ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		c.Server.Shutdown(shutdownCtx)
	}()

	return nil
}

// Router builds the HTTP route table
func (c *Controller) Router() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/latest", c.handleLatest).Methods(http.MethodGet)
	router.HandleFunc("/forecast", c.handleForecast).Methods(http.MethodGet)
	router.HandleFunc("/alerts", c.handleAlerts).Methods(http.MethodGet)
	router.HandleFunc("/healthz", c.handleHealth).Methods(http.MethodGet)
	return router
}

func (c *Controller) snapshot() *types.ForecastEvent {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.latest
}

func (c *Controller) handleLatest(w http.ResponseWriter, req *http.Request) {
	ev := c.snapshot()
	if ev == nil {
		c.formatter.WriteError(w, req, http.StatusNotFound, "no forecast available yet")
		return
	}
	c.formatter.WriteResponse(w, req, ev)
}

func (c *Controller) handleForecast(w http.ResponseWriter, req *http.Request) {
	ev := c.snapshot()
	if ev == nil {
		c.formatter.WriteError(w, req, http.StatusNotFound, "no forecast available yet")
		return
	}
	c.formatter.WriteResponse(w, req, map[string]any{
		"id":       ev.ID,
		"cycle":    ev.Cycle,
		"forecast": ev.Forecast,
	})
}

func (c *Controller) handleAlerts(w http.ResponseWriter, req *http.Request) {
	ev := c.snapshot()
	if ev == nil {
		c.formatter.WriteError(w, req, http.StatusNotFound, "no forecast available yet")
		return
	}
	c.formatter.WriteResponse(w, req, ev.Alerts)
}

func (c *Controller) handleHealth(w http.ResponseWriter, req *http.Request) {
	c.formatter.WriteResponse(w, req, map[string]string{"status": "ok"})
}
