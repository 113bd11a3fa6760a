// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CleanupOutcome is the non-error result of a cache cleanup.
type CleanupOutcome int

const (
	CleanupSkipped CleanupOutcome = iota
	CleanupCleared
	CleanupNotFound
)

func (o CleanupOutcome) String() string {
	switch o {
	case CleanupCleared:
		return "cleared"
	case CleanupNotFound:
		return "not_found"
	default:
		return "skipped"
	}
}
