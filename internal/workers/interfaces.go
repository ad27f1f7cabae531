// Package workers runs the background jobs of the server.
// It defines the Worker interface and a Workers aggregate that starts and
// stops several workers together.
package workers

import (
	"context"
	"time"
)

// Worker is a background job.
//
// Run starts the job and returns immediately; the job ends when ctx is done
// or Stop is called. Stop blocks until the job has exited and is safe to call
// on a worker that never ran.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}

// Sweeper drops expired key exchange state. It is implemented by
// keyexchange.Registry.
type Sweeper interface {
	Sweep(now time.Time) int
	Len() int
}
