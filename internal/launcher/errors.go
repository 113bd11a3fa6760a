// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package launcher

import (
	"errors"
	"fmt"
)

// ErrUnknownClient is returned when a launch request names no supported client.
var ErrUnknownClient = errors.New("unknown remote client")

// ConfigError reports an executable path that is empty or does not exist.
type ConfigError struct {
	Path string
}

func (e *ConfigError) Error() string {
	if e.Path == "" {
		return "executable path is not configured"
	}
	return fmt.Sprintf("executable not found: %q", e.Path)
}

// LaunchError reports an operating-system failure to start a process.
type LaunchError struct {
	Path string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("start %q: %v", e.Path, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}
