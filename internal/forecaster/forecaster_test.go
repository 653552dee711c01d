package forecaster

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/microwx/microwx/internal/constants"
	"github.com/microwx/microwx/internal/types"
	"github.com/microwx/microwx/pkg/config"
	"go.uber.org/zap"
)

type fakeSensor struct {
	temp, humidity, pressure float32
}

func (s *fakeSensor) Start() error             { return nil }
func (s *fakeSensor) ReadTemperature() float32 { return s.temp }
func (s *fakeSensor) ReadHumidity() float32    { return s.humidity }
func (s *fakeSensor) ReadPressure() float32    { return s.pressure }
func (s *fakeSensor) SensorName() string       { return "bench" }

type fakeEngine struct {
	output      []float32
	invokeErr   error
	invocations int
}

func (e *fakeEngine) SetInput(input []float32) error { return nil }
func (e *fakeEngine) Invoke(ctx context.Context) error {
	e.invocations++
	return e.invokeErr
}
func (e *fakeEngine) Output() ([]float32, error) { return e.output, nil }

func testConfig() *config.ConfigData {
	return &config.ConfigData{
		Sensor: config.SensorData{Type: "serialbus", SampleInterval: "1m"},
		Model: config.ModelData{
			RunnerAddr: "localhost:9000",
			Features: []config.FeatureStatData{
				{Name: "temperature", Mean: 20, Std: 5},
				{Name: "humidity", Mean: 60, Std: 15},
				{Name: "pressure", Mean: 1013, Std: 8},
			},
		},
	}
}

// flatOutput builds a normalized output tensor whose denormalized
// readings all equal the configured feature means.
func flatOutput() []float32 {
	return make([]float32, constants.OutputTensorLen)
}

func newTestForecaster(t *testing.T, engine *fakeEngine, events chan types.ForecastEvent) (*Forecaster, *fakeSensor) {
	t.Helper()
	sensor := &fakeSensor{temp: 21, humidity: 55, pressure: 1015}
	wg := sync.WaitGroup{}
	f, err := New(context.Background(), &wg, testConfig(), sensor, engine, events, zap.NewNop().Sugar())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return f, sensor
}

func TestCycleDefersUntilWindowFilled(t *testing.T) {
	engine := &fakeEngine{output: flatOutput()}
	events := make(chan types.ForecastEvent, 4)
	f, _ := newTestForecaster(t, engine, events)

	now := time.Now()
	for i := 0; i < constants.WindowSize-1; i++ {
		f.cycle(now.Add(time.Duration(i) * time.Minute))
	}

	if engine.invocations != 0 {
		t.Fatalf("engine invoked %d times before window filled", engine.invocations)
	}
	if len(events) != 0 {
		t.Fatalf("got %d events before window filled", len(events))
	}

	f.cycle(now.Add(time.Duration(constants.WindowSize) * time.Minute))
	if engine.invocations != 1 {
		t.Fatalf("engine invocations = %d after window filled, want 1", engine.invocations)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events after window filled, want 1", len(events))
	}
}

func TestCycleSkipsInvalidReading(t *testing.T) {
	engine := &fakeEngine{output: flatOutput()}
	events := make(chan types.ForecastEvent, 4)
	f, sensor := newTestForecaster(t, engine, events)

	now := time.Now()
	for i := 0; i < constants.WindowSize; i++ {
		f.cycle(now.Add(time.Duration(i) * time.Minute))
	}
	if len(events) != 1 {
		t.Fatalf("setup: expected 1 event, got %d", len(events))
	}
	<-events

	// A NaN read skips the whole cycle but leaves the window intact.
	sensor.humidity = float32(math.NaN())
	f.cycle(now.Add(time.Duration(constants.WindowSize+1) * time.Minute))
	if len(events) != 0 {
		t.Fatalf("got event from cycle with NaN reading")
	}

	sensor.humidity = 55
	f.cycle(now.Add(time.Duration(constants.WindowSize+2) * time.Minute))
	if len(events) != 1 {
		t.Fatalf("window did not survive skipped cycle: got %d events", len(events))
	}
}

func TestCycleSkipsInferenceFailure(t *testing.T) {
	engine := &fakeEngine{output: flatOutput()}
	events := make(chan types.ForecastEvent, 4)
	f, _ := newTestForecaster(t, engine, events)

	now := time.Now()
	for i := 0; i < constants.WindowSize-1; i++ {
		f.cycle(now.Add(time.Duration(i) * time.Minute))
	}

	// A failed forward pass skips reporting for the cycle.
	engine.invokeErr = errors.New("arena exhausted")
	f.cycle(now.Add(time.Duration(constants.WindowSize) * time.Minute))
	if len(events) != 0 {
		t.Fatalf("got event despite inference failure")
	}

	// The next tick retries with the window intact.
	engine.invokeErr = nil
	f.cycle(now.Add(time.Duration(constants.WindowSize+1) * time.Minute))
	if len(events) != 1 {
		t.Fatalf("cycle after inference failure produced %d events, want 1", len(events))
	}
}

func TestCycleEventContents(t *testing.T) {
	engine := &fakeEngine{output: flatOutput()}
	events := make(chan types.ForecastEvent, 4)
	f, sensor := newTestForecaster(t, engine, events)
	// Live pressure matching the forecast mean keeps the delta at zero.
	sensor.pressure = 1013

	now := time.Now()
	for i := 0; i <= constants.WindowSize; i++ {
		f.cycle(now.Add(time.Duration(i) * time.Minute))
	}
	ev := <-events

	if ev.ID == "" {
		t.Error("event ID is empty")
	}
	if len(ev.Forecast) != constants.ForecastSteps {
		t.Fatalf("forecast has %d steps, want %d", len(ev.Forecast), constants.ForecastSteps)
	}
	// Zero z-scores denormalize to the feature means.
	first := ev.Forecast[0]
	if math.Abs(float64(first.Temperature-20)) > 1e-4 {
		t.Errorf("forecast temperature = %v, want 20", first.Temperature)
	}
	if math.Abs(float64(first.Pressure-1013)) > 1e-4 {
		t.Errorf("forecast pressure = %v, want 1013", first.Pressure)
	}
	// Forecast timestamps run at one-minute resolution from the cycle time.
	if got := ev.Forecast[0].Timestamp.Sub(ev.Cycle); got != time.Minute {
		t.Errorf("first step offset = %v, want 1m", got)
	}
	if got := ev.Forecast[1].Timestamp.Sub(ev.Forecast[0].Timestamp); got != time.Minute {
		t.Errorf("step spacing = %v, want 1m", got)
	}
	if ev.Alerts.Any() {
		t.Errorf("unexpected alerts: %+v", ev.Alerts)
	}
}

func TestThin(t *testing.T) {
	forecast := make([]types.Reading, 60)
	for i := range forecast {
		forecast[i].Temperature = float32(i)
	}

	tests := []struct {
		every     int
		wantLen   int
		wantFirst float32
	}{
		{0, 60, 0},
		{1, 60, 0},
		{5, 12, 4},
		{60, 1, 59},
	}
	for _, tt := range tests {
		got := thin(forecast, tt.every)
		if len(got) != tt.wantLen {
			t.Errorf("thin(every=%d) len = %d, want %d", tt.every, len(got), tt.wantLen)
			continue
		}
		if got[0].Temperature != tt.wantFirst {
			t.Errorf("thin(every=%d) first = %v, want %v", tt.every, got[0].Temperature, tt.wantFirst)
		}
	}
}

func TestThresholdOverrides(t *testing.T) {
	th := thresholdsFromConfig(config.ThresholdsData{
		StormPressureDrop: -1.5,
		PressureSource:    "forecast",
	})
	if th.StormPressureDrop != -1.5 {
		t.Errorf("StormPressureDrop = %v, want -1.5", th.StormPressureDrop)
	}
	// Unset fields keep defaults.
	if th.RainHumidity != 85 {
		t.Errorf("RainHumidity = %v, want default 85", th.RainHumidity)
	}
}
