// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running and stopping multiple workers in a unified way.
package workers

import (
	"context"

	"github.com/mwiersma/grippsync/internal/service"
	"github.com/mwiersma/grippsync/models"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker's execution; implementations are expected to spawn
// their goroutines internally and return. Stop cancels the worker and blocks
// until its goroutines have exited. Stop must be safe to call before Run and
// more than once.
type Worker interface {
	Run()
	Stop()
}

// Runner starts one sync run. Implemented by the orchestrator.
type Runner interface {
	Run(ctx context.Context, opts service.RunOptions) (*models.RunReport, error)
}
