// Package constants defines application-wide constants and version information.
package constants

import "runtime"

// Version holds the application version information
const Version = "1.2-" + runtime.GOOS + "/" + runtime.GOARCH

// Model tensor geometry.  These are frozen for the process lifetime and
// must match the model compiled into the runner; the runner rejects any
// mismatch at initialization.
const (
	// WindowSize is the number of historical readings fed to the model (N)
	WindowSize = 30

	// FeatureCount is the number of measurements per reading (F):
	// temperature, humidity, pressure
	FeatureCount = 3

	// ForecastSteps is the number of predicted readings returned by the
	// model (P), at one-minute resolution
	ForecastSteps = 60

	// InputTensorLen is the flat length of the standardized input window
	InputTensorLen = WindowSize * FeatureCount

	// OutputTensorLen is the flat length of the standardized forecast
	OutputTensorLen = ForecastSteps * FeatureCount
)
