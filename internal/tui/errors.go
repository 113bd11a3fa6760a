// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

var (
	// ErrMissingDependency is returned by New when a required collaborator is nil.
	ErrMissingDependency = errors.New("tui: missing dependency")
	// ErrOperationStillRunning is returned by Run when the aborted operation
	// did not finish in time.
	ErrOperationStillRunning = errors.New("operation did not stop before exit")
)
