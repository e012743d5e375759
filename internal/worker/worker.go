// Package worker provides the lifecycle scaffolding shared by all stream
// consumers: a common Worker contract, a base with stop semantics, and a
// manager that runs a set of workers and shuts them down together.
package worker

import (
	"context"
)

// Worker is the contract every background consumer implements.
type Worker interface {
	// Start runs the worker loop until Stop or context cancellation.
	Start(ctx context.Context) error

	// Stop signals the worker to finish its current batch and exit.
	Stop() error

	// Name returns the worker name used in logs.
	Name() string
}
