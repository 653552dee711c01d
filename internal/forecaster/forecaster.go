// Package forecaster runs the forecasting cycle: sample the sensor,
// maintain the history window, run the model through the inference
// gateway, and turn the forecast into alerts.
package forecaster

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/microwx/microwx/internal/constants"
	"github.com/microwx/microwx/internal/decision"
	"github.com/microwx/microwx/internal/history"
	"github.com/microwx/microwx/internal/inference"
	"github.com/microwx/microwx/internal/log"
	"github.com/microwx/microwx/internal/normalize"
	"github.com/microwx/microwx/internal/sensors"
	"github.com/microwx/microwx/internal/types"
	"github.com/microwx/microwx/pkg/config"
	"go.uber.org/zap"
)

// Forecaster owns the per-cycle sequencing.  Everything it touches runs
// strictly sequentially within one cycle; a slow inference pass simply
// delays the next sampling check.
type Forecaster struct {
	ctx         context.Context
	wg          *sync.WaitGroup
	sensor      sensors.Sensor
	gateway     *inference.Gateway
	params      *normalize.Params
	thresholds  decision.Thresholds
	buffer      *history.Buffer
	distributor chan<- types.ForecastEvent
	interval    time.Duration
	reportEvery int
	logger      *zap.SugaredLogger
}

// New assembles a forecaster from the validated configuration and its
// collaborators.  Normalization statistics are checked here: a bad
// standard deviation halts initialization rather than surfacing later
// inside a cycle.
func New(ctx context.Context, wg *sync.WaitGroup, cfg *config.ConfigData, sensor sensors.Sensor, engine inference.Engine, distributor chan<- types.ForecastEvent, logger *zap.SugaredLogger) (*Forecaster, error) {
	var stats [constants.FeatureCount]normalize.Stat
	for i, f := range cfg.Model.Features {
		stats[i] = normalize.Stat{Mean: f.Mean, Std: f.Std}
	}
	params, err := normalize.New(stats)
	if err != nil {
		return nil, fmt.Errorf("invalid normalization config: %w", err)
	}

	interval, err := cfg.Sensor.Interval()
	if err != nil {
		return nil, err
	}

	return &Forecaster{
		ctx:         ctx,
		wg:          wg,
		sensor:      sensor,
		gateway:     inference.NewGateway(engine),
		params:      params,
		thresholds:  thresholdsFromConfig(cfg.Thresholds),
		buffer:      history.NewBuffer(constants.WindowSize),
		distributor: distributor,
		interval:    interval,
		reportEvery: cfg.Model.ReportEvery,
		logger:      logger,
	}, nil
}

// thresholdsFromConfig overlays configured thresholds on the defaults.
// A zero value keeps the default.
func thresholdsFromConfig(t config.ThresholdsData) decision.Thresholds {
	th := decision.Defaults()
	if t.StormPressureDrop != 0 {
		th.StormPressureDrop = t.StormPressureDrop
	}
	if t.RainPressureDrop != 0 {
		th.RainPressureDrop = t.RainPressureDrop
	}
	if t.RainHumidity != 0 {
		th.RainHumidity = t.RainHumidity
	}
	if t.HeatTemp != 0 {
		th.HeatTemp = t.HeatTemp
	}
	if t.FreezeTemp != 0 {
		th.FreezeTemp = t.FreezeTemp
	}
	if t.RisingPressure != 0 {
		th.RisingPressure = t.RisingPressure
	}
	if t.PressureSource == "forecast" {
		th.Source = decision.PressureFromForecast
	}
	return th
}

// Start launches the forecasting loop
func (f *Forecaster) Start() {
	f.wg.Add(1)
	go f.run()
}

func (f *Forecaster) run() {
	defer f.wg.Done()

	log.Infof("Starting forecaster (sample interval %v)...", f.interval)

	// A time.Ticker collapses missed ticks, so a delayed cycle shifts
	// the next one instead of queueing a backlog
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	f.cycle(time.Now())

	for {
		select {
		case t := <-ticker.C:
			f.cycle(t)
		case <-f.ctx.Done():
			log.Info("cancellation request received. Cancelling forecaster.")
			return
		}
	}
}

// cycle performs one full forecasting pass.  Sensor and inference
// failures are local to the cycle: they skip the remaining stages and
// leave all state ready for the next tick.
func (f *Forecaster) cycle(now time.Time) {
	current := types.Reading{
		Timestamp:   now,
		StationName: f.sensor.SensorName(),
		Temperature: f.sensor.ReadTemperature(),
		Humidity:    f.sensor.ReadHumidity(),
		Pressure:    f.sensor.ReadPressure(),
	}

	if !current.Valid() {
		f.logger.Warnf("invalid sensor reading, skipping cycle")
		return
	}

	f.buffer.Insert(current)

	if !f.buffer.Filled() {
		f.logger.Debugf("history window warming up (%d/%d), deferring forecast",
			f.buffer.Len(), f.buffer.Capacity())
		return
	}

	window := f.params.StandardizeWindow(f.buffer.Snapshot())

	output, err := f.gateway.Run(f.ctx, window)
	if err != nil {
		f.logger.Warnf("inference failed, skipping cycle: %v", err)
		return
	}

	forecast, err := f.params.DenormalizeForecast(output)
	if err != nil {
		f.logger.Warnf("malformed forecast, skipping cycle: %v", err)
		return
	}

	// Forecast steps are at one-minute resolution starting one minute
	// from now
	for i := range forecast {
		forecast[i].Timestamp = now.Add(time.Duration(i+1) * time.Minute)
		forecast[i].StationName = current.StationName
	}

	alerts := decision.Decide(forecast, current, f.thresholds)

	if alerts.Any() {
		f.logger.Infof("alerts: %+v", alerts)
	}

	f.distributor <- types.ForecastEvent{
		ID:       uuid.New().String(),
		Cycle:    now,
		Current:  current,
		Forecast: thin(forecast, f.reportEvery),
		Alerts:   alerts,
	}
}

// thin reduces the reported forecast to every n-th step.  The decision
// engine always sees the full horizon; only reporting is thinned.
func thin(forecast []types.Reading, every int) []types.Reading {
	if every <= 1 {
		return forecast
	}
	thinned := make([]types.Reading, 0, len(forecast)/every+1)
	for i := every - 1; i < len(forecast); i += every {
		thinned = append(thinned, forecast[i])
	}
	return thinned
}
