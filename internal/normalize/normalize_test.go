package normalize

import (
	"math"
	"testing"

	"github.com/microwx/microwx/internal/constants"
	"github.com/microwx/microwx/internal/types"
)

func testParams(t *testing.T) *Params {
	t.Helper()
	p, err := New([constants.FeatureCount]Stat{
		{Mean: 15.0, Std: 8.2},
		{Mean: 62.4, Std: 17.9},
		{Mean: 1013.25, Std: 7.3},
	})
	if err != nil {
		t.Fatalf("New returned error for valid stats: %v", err)
	}
	return p
}

func TestNewRejectsNonPositiveStd(t *testing.T) {
	tests := []struct {
		name string
		std  float32
	}{
		{name: "zero std", std: 0},
		{name: "negative std", std: -1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New([constants.FeatureCount]Stat{
				{Mean: 10, Std: 1},
				{Mean: 50, Std: tt.std},
				{Mean: 1000, Std: 5},
			})
			if err == nil {
				t.Errorf("New accepted std=%v, want error", tt.std)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	p := testParams(t)

	readings := []types.Reading{
		{Temperature: 21.3, Humidity: 48.0, Pressure: 1011.2},
		{Temperature: -12.7, Humidity: 99.9, Pressure: 987.4},
		{Temperature: 38.6, Humidity: 8.1, Pressure: 1032.0},
		{Temperature: 0, Humidity: 0, Pressure: 0},
	}

	for _, r := range readings {
		got := p.Denormalize(p.Standardize(r))

		checkClose(t, "temperature", got.Temperature, r.Temperature)
		checkClose(t, "humidity", got.Humidity, r.Humidity)
		checkClose(t, "pressure", got.Pressure, r.Pressure)
	}
}

// checkClose asserts relative closeness to 1e-5, with an absolute
// fallback near zero
func checkClose(t *testing.T, field string, got, want float32) {
	t.Helper()
	diff := math.Abs(float64(got - want))
	scale := math.Abs(float64(want))
	if scale < 1 {
		scale = 1
	}
	if diff/scale > 1e-5 {
		t.Errorf("%s round-trip: got %v, want %v", field, got, want)
	}
}

func TestStandardizeKnownValues(t *testing.T) {
	p, err := New([constants.FeatureCount]Stat{
		{Mean: 10, Std: 2},
		{Mean: 50, Std: 10},
		{Mean: 1000, Std: 4},
	})
	if err != nil {
		t.Fatal(err)
	}

	z := p.Standardize(types.Reading{Temperature: 14, Humidity: 35, Pressure: 1002})
	want := [constants.FeatureCount]float32{2.0, -1.5, 0.5}
	for i := range want {
		if math.Abs(float64(z[i]-want[i])) > 1e-6 {
			t.Errorf("feature %d: got %v, want %v", i, z[i], want[i])
		}
	}
}

func TestStandardizeWindowLayout(t *testing.T) {
	p, err := New([constants.FeatureCount]Stat{
		{Mean: 0, Std: 1},
		{Mean: 0, Std: 1},
		{Mean: 0, Std: 1},
	})
	if err != nil {
		t.Fatal(err)
	}

	window := []types.Reading{
		{Temperature: 1, Humidity: 2, Pressure: 3},
		{Temperature: 4, Humidity: 5, Pressure: 6},
	}

	tensor := p.StandardizeWindow(window)
	want := []float32{1, 2, 3, 4, 5, 6}
	if len(tensor) != len(want) {
		t.Fatalf("tensor length = %d, want %d", len(tensor), len(want))
	}
	// Row-major by time step, then feature
	for i := range want {
		if tensor[i] != want[i] {
			t.Errorf("tensor[%d] = %v, want %v", i, tensor[i], want[i])
		}
	}
}

func TestDenormalizeForecast(t *testing.T) {
	p := testParams(t)

	// Build a standardized tensor from known readings and recover them
	orig := []types.Reading{
		{Temperature: 22.5, Humidity: 61.0, Pressure: 1008.8},
		{Temperature: 23.1, Humidity: 66.0, Pressure: 1007.9},
	}
	tensor := p.StandardizeWindow(orig)

	forecast, err := p.DenormalizeForecast(tensor)
	if err != nil {
		t.Fatal(err)
	}
	if len(forecast) != len(orig) {
		t.Fatalf("forecast length = %d, want %d", len(forecast), len(orig))
	}
	for i := range orig {
		checkClose(t, "temperature", forecast[i].Temperature, orig[i].Temperature)
		checkClose(t, "humidity", forecast[i].Humidity, orig[i].Humidity)
		checkClose(t, "pressure", forecast[i].Pressure, orig[i].Pressure)
	}
}

func TestDenormalizeForecastRejectsRaggedTensor(t *testing.T) {
	p := testParams(t)
	if _, err := p.DenormalizeForecast(make([]float32, 7)); err == nil {
		t.Error("DenormalizeForecast accepted a tensor of length 7")
	}
}
