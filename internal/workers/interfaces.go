// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and returns once it is running; the work itself
// happens in goroutines owned by the worker and ends when ctx is cancelled
// or Stop is called.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
