// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backoffice

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrServersListNotFound means the BackOffice config has no ServersList element.
	ErrServersListNotFound = errors.New("ServersList element not found")
	// ErrExecutableNotFound means BackOffice.exe is missing from the installer folder.
	ErrExecutableNotFound = errors.New("BackOffice.exe not found")
)

// TimeoutError is returned when a waited-for file did not become ready in time.
type TimeoutError struct {
	Path    string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("file %q was not ready after %s", e.Path, e.Timeout)
}
