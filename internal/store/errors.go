// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrConnectionNotFound is returned when no entry has the requested id.
	ErrConnectionNotFound = errors.New("connection was not found")

	// ErrConnectionExists is returned when an insert or update would give a
	// client two entries with the same name.
	ErrConnectionExists = errors.New("connection with this name already exists")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery   = errors.New("error building sql query")
	ErrExecutingQuery     = errors.New("error executing sql query")
	ErrExecutingStatement = errors.New("failed to executing statement")
	ErrScanningRows       = errors.New("failed to scan connection rows")
	ErrInvalidLegacyFile  = errors.New("invalid legacy notebook file")
)
