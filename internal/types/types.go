// Package types holds the core data types passed between the forecaster,
// the sensors, and the reporting backends.
package types

import (
	"math"
	"time"
)

// Reading is a single multivariate weather observation.  Values carry
// weather-station units: degrees Celsius, percent relative humidity,
// and hectopascals.  Readings have value semantics only.
type Reading struct {
	Timestamp   time.Time `gorm:"column:time" json:"ts"`
	StationName string    `gorm:"column:stationname" json:"station,omitempty"`
	Temperature float32   `gorm:"column:temperature" json:"temperature"`
	Humidity    float32   `gorm:"column:humidity" json:"humidity"`
	Pressure    float32   `gorm:"column:pressure" json:"pressure"`
}

// Valid reports whether every measurement carries a real value.  Sensor
// backends use NaN as the transient-failure sentinel, so a reading with
// any NaN field must not be inserted into the history window.
func (r Reading) Valid() bool {
	return !math.IsNaN(float64(r.Temperature)) &&
		!math.IsNaN(float64(r.Humidity)) &&
		!math.IsNaN(float64(r.Pressure))
}

// Status describes the pressure trend when no alert fired.
type Status string

const (
	StatusRising Status = "RISING"
	StatusStable Status = "STABLE"
)

// AlertSet is the decision engine's output for one cycle.  The flags
// are mutually independent; Status is only set when no flag fired.  An
// AlertSet is recomputed fresh every cycle and never accumulated.
type AlertSet struct {
	StormWarning bool   `json:"storm_warning"`
	RainLikely   bool   `json:"rain_likely"`
	HeatAlert    bool   `json:"heat_alert"`
	FreezeAlert  bool   `json:"freeze_alert"`
	Status       Status `json:"status,omitempty"`
}

// Any reports whether at least one alert flag fired.
func (a AlertSet) Any() bool {
	return a.StormWarning || a.RainLikely || a.HeatAlert || a.FreezeAlert
}

// ForecastEvent is the per-cycle record published to the reporting
// distributor after a successful forecasting cycle.
type ForecastEvent struct {
	ID       string    `json:"id"`
	Cycle    time.Time `json:"cycle"`
	Current  Reading   `json:"current"`
	Forecast []Reading `json:"forecast"`
	Alerts   AlertSet  `json:"alerts"`
}
