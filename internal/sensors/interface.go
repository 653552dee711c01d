// Package sensors defines the contract for sensor pod frontends.
package sensors

// Sensor is the narrow read interface the forecasting cycle polls once
// per sampling interval.  Any read may return NaN as the transient
// failure sentinel; the orchestrator treats a NaN as "skip this cycle's
// insert" and leaves the history window untouched.
type Sensor interface {
	// Start launches background acquisition from the hardware
	Start() error

	// ReadTemperature returns degrees Celsius, or NaN
	ReadTemperature() float32

	// ReadHumidity returns percent relative humidity, or NaN
	ReadHumidity() float32

	// ReadPressure returns hectopascals, or NaN
	ReadPressure() float32

	SensorName() string
}
