// Package decision converts a denormalized forecast into discrete
// weather alerts using fixed threshold rules.
package decision

import (
	"github.com/microwx/microwx/internal/types"
)

// PressureSource selects where "pressure now" comes from when computing
// the pressure delta over the forecast horizon.
type PressureSource int

const (
	// PressureFromLive uses the current sensor reading (default)
	PressureFromLive PressureSource = iota
	// PressureFromForecast uses forecast step 0
	PressureFromForecast
)

// Thresholds holds the decision constants.  They are fixed at
// configuration time, not learned, and are passed in explicitly so the
// engine stays testable in isolation.
type Thresholds struct {
	// StormPressureDrop: storm warning when the pressure delta over
	// the horizon is below this (hPa, negative)
	StormPressureDrop float32

	// RainPressureDrop and RainHumidity: rain likely when the delta is
	// below the former and max forecast humidity exceeds the latter
	RainPressureDrop float32
	RainHumidity     float32

	// HeatTemp / FreezeTemp: temperature bounds at the end of the
	// horizon
	HeatTemp   float32
	FreezeTemp float32

	// RisingPressure: status reads RISING above this delta
	RisingPressure float32

	Source PressureSource
}

// Defaults returns the stock thresholds.
func Defaults() Thresholds {
	return Thresholds{
		StormPressureDrop: -0.8,
		RainPressureDrop:  -0.3,
		RainHumidity:      85.0,
		HeatTemp:          35.0,
		FreezeTemp:        5.0,
		RisingPressure:    0.5,
		Source:            PressureFromLive,
	}
}

// Decide evaluates the alert rules against a denormalized forecast and
// the current reading.  It is a pure function: no state survives
// between calls, and each flag depends only on its own rule.  All
// comparisons are strict, so a delta exactly at a threshold does not
// fire.
func Decide(forecast []types.Reading, current types.Reading, th Thresholds) types.AlertSet {
	var alerts types.AlertSet
	if len(forecast) == 0 {
		return alerts
	}

	pressureNow := current.Pressure
	if th.Source == PressureFromForecast {
		pressureNow = forecast[0].Pressure
	}

	last := forecast[len(forecast)-1]
	pressureDelta := last.Pressure - pressureNow

	maxHumidity := forecast[0].Humidity
	for _, r := range forecast[1:] {
		if r.Humidity > maxHumidity {
			maxHumidity = r.Humidity
		}
	}

	alerts.StormWarning = pressureDelta < th.StormPressureDrop
	alerts.RainLikely = pressureDelta < th.RainPressureDrop && maxHumidity > th.RainHumidity
	alerts.HeatAlert = last.Temperature > th.HeatTemp
	alerts.FreezeAlert = last.Temperature < th.FreezeTemp

	// Status is only a trend readout; it is suppressed whenever any
	// alert already fired
	if !alerts.Any() {
		if pressureDelta > th.RisingPressure {
			alerts.Status = types.StatusRising
		} else {
			alerts.Status = types.StatusStable
		}
	}

	return alerts
}
