// Package normalize implements the per-feature z-score transform between
// raw sensor units and the standardized space the model was trained in.
package normalize

import (
	"fmt"

	"github.com/microwx/microwx/internal/constants"
	"github.com/microwx/microwx/internal/types"
)

// Params holds the immutable per-feature (mean, std) pairs, in feature
// index order: temperature, humidity, pressure.  Construct with New,
// which enforces std > 0 for every feature; after that every transform
// is a total function and is never checked again per call.
type Params struct {
	means [constants.FeatureCount]float32
	stds  [constants.FeatureCount]float32
}

// Stat is one feature's mean and standard deviation.
type Stat struct {
	Mean float32
	Std  float32
}

// New builds normalization parameters from per-feature statistics.
// A non-positive standard deviation is a configuration error, not a
// runtime condition, and is rejected here.
func New(stats [constants.FeatureCount]Stat) (*Params, error) {
	p := &Params{}
	for i, s := range stats {
		if s.Std <= 0 {
			return nil, fmt.Errorf("feature %d: standard deviation must be positive, got %v", i, s.Std)
		}
		p.means[i] = s.Mean
		p.stds[i] = s.Std
	}
	return p, nil
}

// Standardize maps a raw reading into standardized space, feature by
// feature: z = (x - mean) / std.
func (p *Params) Standardize(r types.Reading) [constants.FeatureCount]float32 {
	return [constants.FeatureCount]float32{
		(r.Temperature - p.means[0]) / p.stds[0],
		(r.Humidity - p.means[1]) / p.stds[1],
		(r.Pressure - p.means[2]) / p.stds[2],
	}
}

// Denormalize is the exact algebraic inverse of Standardize:
// x = z * std + mean.  Timestamp and station name are not part of the
// feature space and are left zero.
func (p *Params) Denormalize(z [constants.FeatureCount]float32) types.Reading {
	return types.Reading{
		Temperature: z[0]*p.stds[0] + p.means[0],
		Humidity:    z[1]*p.stds[1] + p.means[1],
		Pressure:    z[2]*p.stds[2] + p.means[2],
	}
}

// StandardizeWindow flattens an ordered window of readings into a fresh
// row-major (timestep, then feature) standardized tensor.  The result
// is cycle-scoped and never retained.
func (p *Params) StandardizeWindow(window []types.Reading) []float32 {
	tensor := make([]float32, 0, len(window)*constants.FeatureCount)
	for _, r := range window {
		z := p.Standardize(r)
		tensor = append(tensor, z[:]...)
	}
	return tensor
}

// DenormalizeForecast maps a flat standardized forecast tensor back to
// readings, one per predicted time step.  The tensor length must be a
// multiple of the feature count; the gateway guarantees the exact
// model output shape before this is called.
func (p *Params) DenormalizeForecast(tensor []float32) ([]types.Reading, error) {
	if len(tensor)%constants.FeatureCount != 0 {
		return nil, fmt.Errorf("forecast tensor length %d is not a multiple of %d",
			len(tensor), constants.FeatureCount)
	}

	steps := len(tensor) / constants.FeatureCount
	forecast := make([]types.Reading, steps)
	for i := 0; i < steps; i++ {
		var z [constants.FeatureCount]float32
		copy(z[:], tensor[i*constants.FeatureCount:(i+1)*constants.FeatureCount])
		forecast[i] = p.Denormalize(z)
	}
	return forecast, nil
}
