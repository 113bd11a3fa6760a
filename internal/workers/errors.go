// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import "errors"

var (
	// ErrOperationInProgress is returned by TryRun while another worker runs.
	ErrOperationInProgress = errors.New("operation in progress")
	// ErrWorkerPanicked is reported to the done callback when a worker panics.
	ErrWorkerPanicked = errors.New("worker panicked")
)
