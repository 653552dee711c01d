// Package config defines the configuration model for the forecaster
// daemon and the providers that load it from YAML or SQLite sources.
package config

import (
	"fmt"
	"time"

	"github.com/microwx/microwx/internal/constants"
)

// ConfigProvider defines the interface for configuration data sources
type ConfigProvider interface {
	// Load complete configuration
	LoadConfig() (*ConfigData, error)

	IsReadOnly() bool
	Close() error
}

// ConfigData represents the complete configuration structure
type ConfigData struct {
	Sensor     SensorData      `yaml:"sensor" json:"sensor"`
	Model      ModelData       `yaml:"model" json:"model"`
	Thresholds ThresholdsData  `yaml:"thresholds,omitempty" json:"thresholds,omitempty"`
	Storage    StorageData     `yaml:"storage,omitempty" json:"storage,omitempty"`
	RESTServer *RESTServerData `yaml:"rest,omitempty" json:"rest,omitempty"`
}

// SensorData holds configuration for the sensor pod frontend
type SensorData struct {
	Name           string `yaml:"name" json:"name"`
	Type           string `yaml:"type" json:"type"`
	SerialDevice   string `yaml:"serial_device,omitempty" json:"serial_device,omitempty"`
	Baud           int    `yaml:"baud,omitempty" json:"baud,omitempty"`
	Hostname       string `yaml:"hostname,omitempty" json:"hostname,omitempty"`
	Port           string `yaml:"port,omitempty" json:"port,omitempty"`
	SampleInterval string `yaml:"sample_interval,omitempty" json:"sample_interval,omitempty"`
}

// Interval parses the configured sample interval, defaulting to one
// minute when unset.
func (s SensorData) Interval() (time.Duration, error) {
	if s.SampleInterval == "" {
		return time.Minute, nil
	}
	d, err := time.ParseDuration(s.SampleInterval)
	if err != nil {
		return 0, fmt.Errorf("invalid sample_interval %q: %w", s.SampleInterval, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("sample_interval must be positive, got %q", s.SampleInterval)
	}
	return d, nil
}

// ModelData holds the model-runner endpoint and the per-feature
// normalization statistics the model was trained with
type ModelData struct {
	RunnerAddr string            `yaml:"runner_addr" json:"runner_addr"`
	Features   []FeatureStatData `yaml:"features" json:"features"`
	// ReportEvery thins the forecast sent to reporting sinks to every
	// n-th step; 0 or 1 reports all 60 steps
	ReportEvery int `yaml:"report_every,omitempty" json:"report_every,omitempty"`
}

// FeatureStatData is one feature's training-set mean and standard
// deviation, in feature-index order: temperature, humidity, pressure
type FeatureStatData struct {
	Name string  `yaml:"name" json:"name"`
	Mean float32 `yaml:"mean" json:"mean"`
	Std  float32 `yaml:"std" json:"std"`
}

// ThresholdsData overrides the decision engine's built-in thresholds.
// Zero values mean "use the default".
type ThresholdsData struct {
	StormPressureDrop float32 `yaml:"storm_pressure_drop,omitempty" json:"storm_pressure_drop,omitempty"`
	RainPressureDrop  float32 `yaml:"rain_pressure_drop,omitempty" json:"rain_pressure_drop,omitempty"`
	RainHumidity      float32 `yaml:"rain_humidity,omitempty" json:"rain_humidity,omitempty"`
	HeatTemp          float32 `yaml:"heat_temp,omitempty" json:"heat_temp,omitempty"`
	FreezeTemp        float32 `yaml:"freeze_temp,omitempty" json:"freeze_temp,omitempty"`
	RisingPressure    float32 `yaml:"rising_pressure,omitempty" json:"rising_pressure,omitempty"`
	// PressureSource selects where "pressure now" comes from:
	// "live" (default) uses the current sensor reading, "forecast"
	// uses forecast step 0
	PressureSource string `yaml:"pressure_source,omitempty" json:"pressure_source,omitempty"`
}

// StorageData holds the configuration for the reporting sinks
type StorageData struct {
	TimescaleDB *TimescaleDBData `yaml:"timescaledb,omitempty" json:"timescaledb,omitempty"`
	Webhook     *WebhookData     `yaml:"webhook,omitempty" json:"webhook,omitempty"`
}

type TimescaleDBData struct {
	ConnectionString string `yaml:"connection_string" json:"connection_string"`
}

type WebhookData struct {
	URL string `yaml:"url" json:"url"`
	// AlertsOnly suppresses events whose alert set is empty
	AlertsOnly bool   `yaml:"alerts_only,omitempty" json:"alerts_only,omitempty"`
	Timeout    string `yaml:"timeout,omitempty" json:"timeout,omitempty"`
}

type RESTServerData struct {
	ListenAddr string `yaml:"listen_addr,omitempty" json:"listen_addr,omitempty"`
	Port       int    `yaml:"port" json:"port"`
}

// Validate fails fast on configuration that would violate a runtime
// precondition.  A non-positive standard deviation must be rejected
// here, never masked at normalization time.
func (c *ConfigData) Validate() error {
	switch c.Sensor.Type {
	case "serialbus":
	default:
		return fmt.Errorf("unknown sensor type: %q", c.Sensor.Type)
	}

	if c.Sensor.SerialDevice == "" && (c.Sensor.Hostname == "" || c.Sensor.Port == "") {
		return fmt.Errorf("sensor [%s] must define either a serial device or hostname+port", c.Sensor.Name)
	}

	if c.Model.RunnerAddr == "" {
		return fmt.Errorf("model must define runner_addr")
	}

	if len(c.Model.Features) != constants.FeatureCount {
		return fmt.Errorf("model must define exactly %d features, got %d",
			constants.FeatureCount, len(c.Model.Features))
	}

	for i, f := range c.Model.Features {
		if f.Std <= 0 {
			return fmt.Errorf("feature %d [%s] has non-positive standard deviation %v", i, f.Name, f.Std)
		}
	}

	switch c.Thresholds.PressureSource {
	case "", "live", "forecast":
	default:
		return fmt.Errorf("unknown pressure_source: %q", c.Thresholds.PressureSource)
	}

	return nil
}
