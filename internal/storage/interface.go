// Package storage defines interfaces and implementations for the
// reporting sinks that receive forecast events.
package storage

import (
	"context"
	"sync"

	"github.com/microwx/microwx/internal/types"
)

// StorageEngineInterface is an interface that provides a few
// standardized methods for the various reporting backends.  A sink is
// one-way: failures inside it are logged and never propagate back into
// the forecasting cycle.
type StorageEngineInterface interface {
	StartStorageEngine(context.Context, *sync.WaitGroup) chan<- types.ForecastEvent
}
