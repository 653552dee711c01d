package inference

import (
	"context"
	"errors"
	"testing"

	"github.com/microwx/microwx/internal/constants"
)

// fakeEngine records calls and returns scripted results
type fakeEngine struct {
	input       []float32
	output      []float32
	invokeErr   error
	setErr      error
	invocations int
}

func (f *fakeEngine) SetInput(tensor []float32) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.input = append([]float32(nil), tensor...)
	return nil
}

func (f *fakeEngine) Invoke(ctx context.Context) error {
	f.invocations++
	return f.invokeErr
}

func (f *fakeEngine) Output() ([]float32, error) {
	return f.output, nil
}

func validWindow() []float32 {
	return make([]float32, constants.InputTensorLen)
}

func validOutput() []float32 {
	return make([]float32, constants.OutputTensorLen)
}

func TestOutputBeforeInvokeRejected(t *testing.T) {
	g := NewGateway(&fakeEngine{output: validOutput()})

	if _, err := g.Output(); !errors.Is(err, ErrNotInvoked) {
		t.Fatalf("Output before Invoke: got %v, want ErrNotInvoked", err)
	}

	// Staging input alone must not unlock output either
	if err := g.SetInput(validWindow()); err != nil {
		t.Fatal(err)
	}
	if _, err := g.Output(); !errors.Is(err, ErrNotInvoked) {
		t.Fatalf("Output after SetInput only: got %v, want ErrNotInvoked", err)
	}
}

func TestOutputAfterFailedInvokeRejected(t *testing.T) {
	engine := &fakeEngine{output: validOutput(), invokeErr: errors.New("arena exhausted")}
	g := NewGateway(engine)

	if err := g.SetInput(validWindow()); err != nil {
		t.Fatal(err)
	}
	if err := g.Invoke(context.Background()); err == nil {
		t.Fatal("Invoke succeeded, want failure")
	}
	if _, err := g.Output(); !errors.Is(err, ErrNotInvoked) {
		t.Fatalf("Output after failed Invoke: got %v, want ErrNotInvoked", err)
	}
}

func TestPartialInputRejected(t *testing.T) {
	engine := &fakeEngine{output: validOutput()}
	g := NewGateway(engine)

	err := g.SetInput(make([]float32, constants.InputTensorLen-1))
	if err == nil {
		t.Fatal("SetInput accepted a short tensor")
	}

	// The engine must never have seen the partial write
	if engine.input != nil {
		t.Error("partial tensor reached the engine")
	}

	// And the gateway must not be armed
	if err := g.Invoke(context.Background()); err == nil {
		t.Error("Invoke succeeded after rejected input")
	}
}

func TestRunHappyPath(t *testing.T) {
	engine := &fakeEngine{output: validOutput()}
	for i := range engine.output {
		engine.output[i] = float32(i)
	}
	g := NewGateway(engine)

	window := validWindow()
	for i := range window {
		window[i] = float32(i) * 0.25
	}

	out, err := g.Run(context.Background(), window)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != constants.OutputTensorLen {
		t.Fatalf("output length = %d, want %d", len(out), constants.OutputTensorLen)
	}
	if engine.invocations != 1 {
		t.Errorf("engine invoked %d times, want 1", engine.invocations)
	}
	if engine.input[5] != window[5] {
		t.Error("staged input did not reach the engine intact")
	}
}

func TestOutputConsumedAfterRead(t *testing.T) {
	g := NewGateway(&fakeEngine{output: validOutput()})

	if _, err := g.Run(context.Background(), validWindow()); err != nil {
		t.Fatal(err)
	}

	// Re-reading without a fresh cycle must be rejected, never return
	// stale data
	if _, err := g.Output(); !errors.Is(err, ErrNotInvoked) {
		t.Fatalf("second Output read: got %v, want ErrNotInvoked", err)
	}
}

func TestWrongOutputShapeRejected(t *testing.T) {
	engine := &fakeEngine{output: make([]float32, 10)}
	g := NewGateway(engine)

	if _, err := g.Run(context.Background(), validWindow()); err == nil {
		t.Fatal("Run accepted a malformed output tensor")
	}
}
