// Package webhook pushes forecast events to an upstream HTTP endpoint.
// A circuit breaker shields the endpoint from hammering while it is
// down; events arriving with the breaker open are dropped, never
// queued, since reporting failures must not back up into the
// forecasting cycle.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/microwx/microwx/internal/log"
	"github.com/microwx/microwx/internal/types"
	"github.com/microwx/microwx/pkg/config"
	"github.com/sony/gobreaker"
)

// Storage implements an HTTP webhook reporting backend
type Storage struct {
	cfg     config.WebhookData
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
}

// New sets up a webhook reporting backend
func New(cfg config.WebhookData) (*Storage, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("webhook reporting requires a url")
	}

	timeout := 10 * time.Second
	if cfg.Timeout != "" {
		d, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid webhook timeout %q: %w", cfg.Timeout, err)
		}
		timeout = d
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "forecast-webhook",
		Timeout: time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warnf("webhook breaker %s: %s -> %s", name, from.String(), to.String())
		},
	})

	return &Storage{
		cfg:     cfg,
		client:  &http.Client{Timeout: timeout},
		breaker: breaker,
	}, nil
}

// StartStorageEngine creates a goroutine loop to receive forecast
// events and push them to the webhook
func (w *Storage) StartStorageEngine(ctx context.Context, wg *sync.WaitGroup) chan<- types.ForecastEvent {
	log.Info("starting webhook reporting engine...")
	eventChan := make(chan types.ForecastEvent, 10)
	go w.processEvents(ctx, wg, eventChan)
	return eventChan
}

func (w *Storage) processEvents(ctx context.Context, wg *sync.WaitGroup, events <-chan types.ForecastEvent) {
	wg.Add(1)
	defer wg.Done()

	for {
		select {
		case ev := <-events:
			if w.cfg.AlertsOnly && !ev.Alerts.Any() {
				continue
			}
			if err := w.push(ctx, ev); err != nil {
				log.Warnf("webhook push failed: %v", err)
			}
		case <-ctx.Done():
			log.Info("cancellation request received. Cancelling webhook processor.")
			return
		}
	}
}

func (w *Storage) push(ctx context.Context, ev types.ForecastEvent) error {
	_, err := w.breaker.Execute(func() (interface{}, error) {
		body, err := json.Marshal(ev)
		if err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.URL, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := w.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 300 {
			return nil, fmt.Errorf("webhook returned status %d", resp.StatusCode)
		}
		return nil, nil
	})
	return err
}
