package decision

import (
	"testing"

	"github.com/microwx/microwx/internal/types"
)

// flatForecast builds a 60-step forecast where every step carries the
// given temperature and humidity, and pressure interpolates linearly
// from start to end.
func flatForecast(temp, humidity, pressureStart, pressureEnd float32) []types.Reading {
	const steps = 60
	forecast := make([]types.Reading, steps)
	for i := range forecast {
		frac := float32(i) / float32(steps-1)
		forecast[i] = types.Reading{
			Temperature: temp,
			Humidity:    humidity,
			Pressure:    pressureStart + (pressureEnd-pressureStart)*frac,
		}
	}
	return forecast
}

func current(pressure float32) types.Reading {
	return types.Reading{Temperature: 20, Humidity: 50, Pressure: pressure}
}

func TestScenarios(t *testing.T) {
	tests := []struct {
		name     string
		forecast []types.Reading
		current  types.Reading
		want     types.AlertSet
	}{
		{
			// Sharp pressure fall, dry air: storm only
			name:     "storm warning",
			forecast: flatForecast(20, 60, 1011.0, 1009.5),
			current:  current(1011.2),
			want:     types.AlertSet{StormWarning: true},
		},
		{
			// Gentle fall with saturated air: rain, no storm
			name:     "rain likely",
			forecast: flatForecast(20, 90, 1011.9, 1011.5),
			current:  current(1012.0),
			want:     types.AlertSet{RainLikely: true},
		},
		{
			// Hot horizon with rising pressure: heat alert, status
			// suppressed because an alert fired
			name:     "heat alert suppresses status",
			forecast: flatForecast(36.2, 60, 1010.0, 1010.1),
			current:  current(1010.0),
			want:     types.AlertSet{HeatAlert: true},
		},
		{
			name:     "freeze alert",
			forecast: flatForecast(2.5, 60, 1010.0, 1010.1),
			current:  current(1010.0),
			want:     types.AlertSet{FreezeAlert: true},
		},
		{
			name:     "rising status",
			forecast: flatForecast(20, 60, 1010.0, 1010.6),
			current:  current(1010.0),
			want:     types.AlertSet{Status: types.StatusRising},
		},
		{
			name:     "stable status",
			forecast: flatForecast(20, 60, 1010.0, 1010.2),
			current:  current(1010.0),
			want:     types.AlertSet{Status: types.StatusStable},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(tt.forecast, tt.current, Defaults())
			if got != tt.want {
				t.Errorf("Decide() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestStormScenarioFromSpecSheet(t *testing.T) {
	// pressureNow=1011.2, pressureFuture=1009.5, maxHumidity=60:
	// storm fires (delta -1.7), rain also fires only if humidity > 85,
	// which it is not
	forecast := flatForecast(20, 60, 1011.0, 1009.5)
	got := Decide(forecast, current(1011.2), Defaults())

	want := types.AlertSet{StormWarning: true}
	if got != want {
		t.Errorf("Decide() = %+v, want %+v", got, want)
	}
}

func TestStormBoundaryIsStrict(t *testing.T) {
	// Deltas near the threshold differ by less than one float32 ulp at
	// barometric magnitudes, so the boundary is probed with a zero
	// current pressure, making the subtraction exact.
	tests := []struct {
		name  string
		delta float32
		fires bool
	}{
		{name: "exactly at threshold", delta: -0.8, fires: false},
		{name: "just past threshold", delta: -0.8000001, fires: true},
		{name: "just short of threshold", delta: -0.7999999, fires: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forecast := flatForecast(20, 60, 0, tt.delta)
			got := Decide(forecast, types.Reading{Pressure: 0}, Defaults())
			if got.StormWarning != tt.fires {
				t.Errorf("delta %v: StormWarning = %v, want %v", tt.delta, got.StormWarning, tt.fires)
			}
		})
	}
}

func TestRuleIndependence(t *testing.T) {
	// Toggle each rule's trigger in isolation and verify the other
	// flags are unchanged
	t.Run("humidity does not affect heat", func(t *testing.T) {
		dry := Decide(flatForecast(36.5, 60, 1010.0, 1010.0), current(1010.0), Defaults())
		humid := Decide(flatForecast(36.5, 99, 1010.0, 1010.0), current(1010.0), Defaults())
		if dry.HeatAlert != humid.HeatAlert {
			t.Error("HeatAlert changed when only humidity changed")
		}
	})

	t.Run("temperature does not affect storm", func(t *testing.T) {
		cool := Decide(flatForecast(20, 60, 1011.0, 1009.0), current(1011.2), Defaults())
		hot := Decide(flatForecast(40, 60, 1011.0, 1009.0), current(1011.2), Defaults())
		if cool.StormWarning != hot.StormWarning {
			t.Error("StormWarning changed when only temperature changed")
		}
	})

	t.Run("pressure does not affect freeze", func(t *testing.T) {
		stable := Decide(flatForecast(2.0, 60, 1010.0, 1010.0), current(1010.0), Defaults())
		falling := Decide(flatForecast(2.0, 60, 1011.0, 1008.0), current(1011.2), Defaults())
		if stable.FreezeAlert != falling.FreezeAlert {
			t.Error("FreezeAlert changed when only pressure changed")
		}
	})
}

func TestPressureSourceForecast(t *testing.T) {
	// Live pressure says falling, forecast step 0 says steady.  With
	// the forecast source, the storm rule must use step 0.
	forecast := flatForecast(20, 60, 1010.0, 1009.9)
	cur := current(1011.5)

	th := Defaults()
	live := Decide(forecast, cur, th)
	if !live.StormWarning {
		t.Fatal("live source: expected storm warning from -1.6 delta")
	}

	th.Source = PressureFromForecast
	fromForecast := Decide(forecast, cur, th)
	if fromForecast.StormWarning {
		t.Error("forecast source: storm fired from a -0.1 delta")
	}
}

func TestDecideIsStateless(t *testing.T) {
	forecast := flatForecast(20, 90, 1011.9, 1011.5)
	cur := current(1012.0)

	first := Decide(forecast, cur, Defaults())
	second := Decide(forecast, cur, Defaults())
	if first != second {
		t.Errorf("repeat call diverged: %+v vs %+v", first, second)
	}
}

func TestEmptyForecast(t *testing.T) {
	got := Decide(nil, current(1010.0), Defaults())
	if got != (types.AlertSet{}) {
		t.Errorf("empty forecast: got %+v, want zero AlertSet", got)
	}
}
