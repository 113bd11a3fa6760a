// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs user-triggered background operations one at a time.
//
// A [Runner] holds at most one active [Worker]. Starting a second one while
// the first is running is rejected with [ErrOperationInProgress] rather than
// queued. Abort cancels the worker's context; workers observe it
// cooperatively between steps and inside their copy and poll loops.
package workers

import "context"

// Worker is the interface that must be implemented by any background operation.
// Run blocks until the operation finishes or ctx is canceled.
//
// Example implementation:
//
//	type checkWorker struct{ raw string }
//
//	func (w *checkWorker) Run(ctx context.Context) error {
//	    return svc.Check(ctx, w.raw)
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a function to [Worker].
type WorkerFunc func(ctx context.Context) error

func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
