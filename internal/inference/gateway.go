// Package inference defines the contract with the external inference
// engine and the gateway that enforces its call ordering.
package inference

import (
	"context"
	"errors"
	"fmt"

	"github.com/microwx/microwx/internal/constants"
)

// Engine is the three-call contract an inference backend must satisfy.
// The engine owns the model and its fixed scratch arena; the gateway
// owns nothing but sequencing.  For a fixed input and a fixed model the
// forward pass is deterministic.
type Engine interface {
	// SetInput writes the full standardized input window into the
	// engine's input slot, row-major by time step then feature
	SetInput(tensor []float32) error

	// Invoke triggers a single synchronous forward pass
	Invoke(ctx context.Context) error

	// Output returns the standardized forecast tensor from the last
	// successful Invoke
	Output() ([]float32, error)
}

// ErrNotInvoked is returned when Output is requested without a
// witnessed successful Invoke in the current cycle.
var ErrNotInvoked = errors.New("inference: output requested before a successful invocation")

type phase int

const (
	phaseIdle phase = iota
	phaseArmed
	phaseReady
)

// Gateway sequences exactly one inference invocation per forecasting
// cycle.  A partial input write followed by an invocation is undefined
// behavior in the underlying engine, so the gateway refuses to arm
// unless the tensor has exactly the full input shape, and refuses to
// read output unless the preceding Invoke succeeded.
type Gateway struct {
	engine Engine
	phase  phase
}

// NewGateway wraps an engine in the sequencing contract.
func NewGateway(e Engine) *Gateway {
	return &Gateway{engine: e}
}

// SetInput stages the standardized window.  Any prior armed or ready
// state is discarded: staging new input always starts a fresh cycle.
func (g *Gateway) SetInput(tensor []float32) error {
	g.phase = phaseIdle
	if len(tensor) != constants.InputTensorLen {
		return fmt.Errorf("inference: input tensor has %d values, want %d",
			len(tensor), constants.InputTensorLen)
	}
	if err := g.engine.SetInput(tensor); err != nil {
		return fmt.Errorf("inference: writing input tensor: %w", err)
	}
	g.phase = phaseArmed
	return nil
}

// Invoke runs the forward pass.  It requires a complete staged input
// and downgrades the gateway back to idle on failure, so a failed pass
// can never be followed by an Output read.
func (g *Gateway) Invoke(ctx context.Context) error {
	if g.phase != phaseArmed {
		return errors.New("inference: invoke without a fully staged input")
	}
	if err := g.engine.Invoke(ctx); err != nil {
		g.phase = phaseIdle
		return fmt.Errorf("inference: forward pass failed: %w", err)
	}
	g.phase = phaseReady
	return nil
}

// Output returns the forecast tensor after a witnessed successful
// Invoke, and consumes the ready state so stale output cannot leak
// into a later cycle.
func (g *Gateway) Output() ([]float32, error) {
	if g.phase != phaseReady {
		return nil, ErrNotInvoked
	}
	g.phase = phaseIdle

	out, err := g.engine.Output()
	if err != nil {
		return nil, fmt.Errorf("inference: reading output tensor: %w", err)
	}
	if len(out) != constants.OutputTensorLen {
		return nil, fmt.Errorf("inference: output tensor has %d values, want %d",
			len(out), constants.OutputTensorLen)
	}
	return out, nil
}

// Run performs one full set-all-inputs, invoke, read-all-outputs cycle.
func (g *Gateway) Run(ctx context.Context, window []float32) ([]float32, error) {
	if err := g.SetInput(window); err != nil {
		return nil, err
	}
	if err := g.Invoke(ctx); err != nil {
		return nil, err
	}
	return g.Output()
}
