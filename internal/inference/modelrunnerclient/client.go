// Package modelrunnerclient implements the inference engine contract
// against a model-runner sidecar reached over gRPC.
package modelrunnerclient

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/microwx/microwx/internal/constants"
	"github.com/microwx/microwx/internal/inference"
	"github.com/microwx/microwx/internal/log"
	"github.com/microwx/microwx/protocols/modelrunner"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
)

// Client holds the connection to the model runner.  The runner owns
// the model blob and its scratch arena; the client only moves tensors.
type Client struct {
	conn   *grpc.ClientConn
	client modelrunner.ModelRunnerClient

	input  []float32
	output []float32
}

var _ inference.Engine = (*Client)(nil)

// New dials the model runner and verifies that the model it loaded has
// the tensor geometry this binary was built for.  A geometry mismatch
// is an initialization failure with no degraded mode: the caller is
// expected to halt.
func New(ctx context.Context, addr string) (*Client, error) {
	conn, err := grpc.NewClient(
		addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                2 * time.Minute,
			Timeout:             20 * time.Second,
			PermitWithoutStream: true,
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to model runner at %v: %w", addr, err)
	}

	c := &Client{
		conn:   conn,
		client: modelrunner.NewModelRunnerClient(conn),
	}

	// Startup handshake: reject a model/arena mismatch before the
	// first cycle runs
	info, err := c.client.ModelInfo(ctx, &modelrunner.ModelInfoRequest{})
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("model runner handshake failed: %w", err)
	}

	if info.WindowSize != constants.WindowSize ||
		info.FeatureCount != constants.FeatureCount ||
		info.ForecastSteps != constants.ForecastSteps {
		conn.Close()
		return nil, fmt.Errorf("model geometry mismatch: runner has %dx%d -> %dx%d, want %dx%d -> %dx%d",
			info.WindowSize, info.FeatureCount, info.ForecastSteps, info.FeatureCount,
			constants.WindowSize, constants.FeatureCount, constants.ForecastSteps, constants.FeatureCount)
	}

	log.Infof("Connected to model runner at %v (model %s, arena %d bytes)",
		addr, info.ModelHash, info.ArenaBytes)

	return c, nil
}

// SetInput stages the standardized window for the next Invoke.
func (c *Client) SetInput(tensor []float32) error {
	c.input = tensor
	c.output = nil
	return nil
}

// Invoke runs one forward pass on the runner.  The call blocks for the
// duration of the pass; runner latency is assumed bounded, so no
// per-call timeout is applied.
func (c *Client) Invoke(ctx context.Context) error {
	if c.input == nil {
		return errors.New("no input staged")
	}

	reply, err := c.client.Infer(ctx, &modelrunner.InferRequest{Input: c.input})
	if err != nil {
		return fmt.Errorf("infer RPC failed: %w", err)
	}

	c.output = reply.Output
	return nil
}

// Output returns the forecast tensor from the last successful Invoke.
func (c *Client) Output() ([]float32, error) {
	if c.output == nil {
		return nil, errors.New("no output available")
	}
	return c.output, nil
}

// Close tears down the runner connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
